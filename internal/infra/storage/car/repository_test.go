package car

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Колонки репозитория должны существовать в схеме, иначе каждый
// запрос каталога падает на этапе выполнения
func TestCarColumnsMatchSchema(t *testing.T) {
	schema, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	for _, column := range carColumns {
		assert.Contains(t, string(schema), column, "column %q is missing from the cars schema", column)
	}
}
