package numbering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uta-gremial/reclamos-service/internal/numbering"
)

// TestCategoryCode_KnownCategories verifies each category maps to its fixed code.
func TestCategoryCode_KnownCategories(t *testing.T) {
	cases := map[string]string{
		"Condiciones de trabajo": "CON",
		"Faltante de materiales o elementos de seguridad": "MAT",
		"Higiene y salubridad":               "HIG",
		"Seguridad y prevención":             "SEG",
		"Personal y recursos humanos":        "PER",
		"Conflictos o situaciones laborales": "LAB",
		"Otros reclamos gremiales":           "OTR",
	}
	for categoria, expected := range cases {
		assert.Equal(t, expected, numbering.CategoryCode(categoria), categoria)
	}
}

// TestCategoryCode_UnknownFallsBack verifies unrecognized categories map to OTR.
func TestCategoryCode_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, "OTR", numbering.CategoryCode("Categoría inexistente"))
	assert.Equal(t, "OTR", numbering.CategoryCode(""))
}

// TestGenerate_Format verifies the rendered number shape and zero padding.
func TestGenerate_Format(t *testing.T) {
	assert.Equal(t, "LíneaA-SEG-0001", numbering.Generate("A", "Seguridad y prevención", 1))
	assert.Equal(t, "LíneaB-HIG-0042", numbering.Generate("B", "Higiene y salubridad", 42))
	assert.Equal(t, "Línea7-OTR-1234", numbering.Generate("7", "algo raro", 1234))
}

// TestGenerate_SequenceOrdering verifies numbers are strictly increasing for a
// fixed (linea, categoria) under serialized sequence values.
func TestGenerate_SequenceOrdering(t *testing.T) {
	prev := ""
	for seq := 1; seq <= 50; seq++ {
		current := numbering.Generate("A", "Condiciones de trabajo", seq)
		assert.Greater(t, current, prev)
		prev = current
	}
}
