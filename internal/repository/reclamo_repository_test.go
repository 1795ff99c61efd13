package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `cabecera norte`, escapeLike("cabecera norte"))
	assert.Equal(t, `\%`, escapeLike("%"))
	assert.Equal(t, `100\% roto`, escapeLike("100% roto"))
	assert.Equal(t, `sector\_b`, escapeLike("sector_b"))
	assert.Equal(t, `c:\\temp`, escapeLike(`c:\temp`))
}
