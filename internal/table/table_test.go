package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcsheet/internal/quantity"
)

func TestTable(t *testing.T) {
	t.Run("vector columns share a row count", func(t *testing.T) {
		tbl := New()
		require.NoError(t, tbl.AddColumn("a", []quantity.Quantity{
			quantity.FromFloat(1), quantity.FromFloat(2),
		}))
		assert.Equal(t, 2, tbl.Rows())

		err := tbl.AddColumn("b", []quantity.Quantity{quantity.FromFloat(1)})
		assert.ErrorContains(t, err, "rows")
	})

	t.Run("duplicate column is rejected", func(t *testing.T) {
		tbl := New()
		require.NoError(t, tbl.AddColumn("a", []quantity.Quantity{quantity.FromFloat(1)}))
		assert.ErrorContains(t, tbl.AddColumn("a", nil), "already present")
		assert.ErrorContains(t, tbl.SetScalar("a", quantity.FromFloat(1)), "already present")
	})

	t.Run("scalar broadcasts to every row", func(t *testing.T) {
		tbl := New()
		require.NoError(t, tbl.AddColumn("a", []quantity.Quantity{
			quantity.FromFloat(1), quantity.FromFloat(2), quantity.FromFloat(3),
		}))
		require.NoError(t, tbl.SetScalar("k", quantity.MustParse("5 kN")))

		for row := 0; row < tbl.Rows(); row++ {
			q, ok := tbl.Value("k", row)
			require.True(t, ok)
			assert.Equal(t, 5.0, q.Magnitude())
		}
	})

	t.Run("scalar-only table has one row", func(t *testing.T) {
		tbl := New()
		require.NoError(t, tbl.SetScalar("k", quantity.FromFloat(1)))
		assert.Equal(t, 1, tbl.Rows())
	})

	t.Run("missing column", func(t *testing.T) {
		tbl := New()
		_, ok := tbl.Value("nope", 0)
		assert.False(t, ok)
		assert.False(t, tbl.Has("nope"))
	})
}
