package actorrt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitializedReaderBindBlocksUntilWriterWrites(t *testing.T) {
	ds := newDatastore(nil)
	w := bindWriter[string](t, ds)

	done := make(chan InitializedReader[string], 1)
	errc := make(chan error, 1)
	go func() {
		bound, err := (InitializedReader[string]{}).bind(context.Background(), ds, "reader")
		if err != nil {
			errc <- err
			return
		}
		done <- bound.(InitializedReader[string])
	}()

	select {
	case <-done:
		t.Fatal("bind resolved before the slot held any value")
	case <-errc:
		t.Fatal("bind failed before the slot held any value")
	default:
	}

	require.NoError(t, w.Write(context.Background(), "hello"))

	select {
	case ir := <-done:
		require.Equal(t, "hello", ir.ReadCloned())
	case err := <-errc:
		t.Fatalf("bind failed: %v", err)
	}
}

func TestInitializedReaderInheritsReaderMethods(t *testing.T) {
	ds := newDatastore(nil)
	w := bindWriter[int](t, ds)

	require.NoError(t, w.Write(context.Background(), 5))

	bound, err := (InitializedReader[int]{}).bind(context.Background(), ds, "reader")
	require.NoError(t, err)
	ir := bound.(InitializedReader[int])

	require.True(t, ir.IsUpdated())
	require.NoError(t, ir.ReadUpdated(context.Background(), func(v *int) {
		require.NotNil(t, v)
		require.Equal(t, 5, *v)
	}))
	require.False(t, ir.IsUpdated())
}
