package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("builds consistent configuration", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, b.SetMin(1))
		require.NoError(t, b.SetMax(10))
		require.NoError(t, b.SetAttempts(3))

		cfg, err := b.Build()
		require.NoError(t, err)
		assert.True(t, cfg.IsConsistent())
		assert.Equal(t, 1, cfg.Min())
		assert.Equal(t, 10, cfg.Max())
		assert.Equal(t, 3, cfg.Attempts())
	})

	t.Run("rejects setting a field twice", func(t *testing.T) {
		b := NewBuilder()
		require.NoError(t, b.SetMin(1))
		err := b.SetMin(2)
		assert.ErrorIs(t, err, ErrFieldAlreadySet)
		assert.Contains(t, err.Error(), "minimum")

		cfg, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Min(), "first value wins")
	})

	t.Run("rejects reuse after build", func(t *testing.T) {
		b := NewBuilder()
		_, err := b.Build()
		require.NoError(t, err)

		_, err = b.Build()
		assert.ErrorIs(t, err, ErrBuilderConsumed)
		assert.ErrorIs(t, b.SetMin(1), ErrBuilderConsumed)
		assert.ErrorIs(t, b.SetMax(1), ErrBuilderConsumed)
		assert.ErrorIs(t, b.SetAttempts(1), ErrBuilderConsumed)
	})
}

func TestConfigurationIsConsistent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *Builder)
		want  bool
	}{
		{
			name: "valid",
			build: func(b *Builder) {
				_ = b.SetMin(1)
				_ = b.SetMax(10)
				_ = b.SetAttempts(3)
			},
			want: true,
		},
		{
			name: "negative range is fine",
			build: func(b *Builder) {
				_ = b.SetMin(-10)
				_ = b.SetMax(-5)
				_ = b.SetAttempts(1)
			},
			want: true,
		},
		{
			name: "min equals max",
			build: func(b *Builder) {
				_ = b.SetMin(5)
				_ = b.SetMax(5)
				_ = b.SetAttempts(3)
			},
		},
		{
			name: "min greater than max",
			build: func(b *Builder) {
				_ = b.SetMin(10)
				_ = b.SetMax(1)
				_ = b.SetAttempts(3)
			},
		},
		{
			name: "zero attempts",
			build: func(b *Builder) {
				_ = b.SetMin(1)
				_ = b.SetMax(10)
				_ = b.SetAttempts(0)
			},
		},
		{
			name: "negative attempts",
			build: func(b *Builder) {
				_ = b.SetMin(1)
				_ = b.SetMax(10)
				_ = b.SetAttempts(-1)
			},
		},
		{
			name: "missing minimum",
			build: func(b *Builder) {
				_ = b.SetMax(10)
				_ = b.SetAttempts(3)
			},
		},
		{
			name: "missing maximum",
			build: func(b *Builder) {
				_ = b.SetMin(-10)
				_ = b.SetAttempts(3)
			},
		},
		{
			name:  "nothing set",
			build: func(b *Builder) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			cfg, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.IsConsistent())
		})
	}
}

func TestNewConfiguration(t *testing.T) {
	t.Parallel()

	assert.True(t, NewConfiguration(1, 100, 10).IsConsistent())
	assert.False(t, NewConfiguration(100, 1, 10).IsConsistent())
	assert.False(t, Configuration{}.IsConsistent())
	assert.Equal(t, "[1, 100] with 10 attempts", NewConfiguration(1, 100, 10).String())
}
