package cooklang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllKeepsInputOrder(t *testing.T) {
	docs := []string{
		"Add @salt\n",
		">> servings: 2\nMix @flour{200%g}\n",
		"Use the #pan\n",
	}
	recipes, err := NewParser().ParseAll(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "salt", recipes[0].Ingredients()[0].Name)
	assert.Equal(t, "flour", recipes[1].Ingredients()[0].Name)
	assert.Equal(t, "pan", recipes[2].Cookware()[0].Name)
}

func TestParseAllReportsFailingDocument(t *testing.T) {
	docs := []string{"fine\n", "bad ~{}\n"}
	_, err := NewParser().ParseAll(context.Background(), docs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTimerAmount)
	assert.Contains(t, err.Error(), "document 1")
}

func TestParseAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewParser().ParseAll(ctx, []string{"Add @salt\n"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseAllEmptyInput(t *testing.T) {
	recipes, err := NewParser().ParseAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
