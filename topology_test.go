package actorrt

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type topoWriterOnly struct {
	W Writer[int]
}

type topoReaderOnly struct {
	R Reader[int]
}

type topoValid struct {
	W Writer[int]
	R Reader[int]
}

type topoExclusiveConflict struct {
	W  Writer[int]
	E  ExclusiveReader[int]
	R2 Reader[int]
}

type topoExclusiveAlone struct {
	W Writer[int]
	E ExclusiveReader[int]
}

func TestValidateTopologyAcceptsSingleWriterSingleReader(t *testing.T) {
	require.NotPanics(t, func() {
		validateTopology(
			[]string{"writer", "reader"},
			[]reflect.Type{reflect.TypeFor[topoWriterOnly](), reflect.TypeFor[topoReaderOnly]()},
		)
	})
}

func TestValidateTopologyPanicsOnNoSlot(t *testing.T) {
	require.PanicsWithValue(t,
		"actorrt: no slot available for `int`",
		func() {
			validateTopology([]string{"reader"}, []reflect.Type{reflect.TypeFor[topoReaderOnly]()})
		},
	)
}

func TestValidateTopologyPanicsOnMultipleWriters(t *testing.T) {
	require.PanicsWithValue(t,
		"actorrt: multiple writers for `int`: `a`, `b`",
		func() {
			validateTopology(
				[]string{"a", "b"},
				[]reflect.Type{reflect.TypeFor[topoWriterOnly](), reflect.TypeFor[topoWriterOnly]()},
			)
		},
	)
}

func TestValidateTopologyPanicsOnMissingReader(t *testing.T) {
	require.PanicsWithValue(t,
		"actorrt: missing reader for `int`, written by: `writer`",
		func() {
			validateTopology([]string{"writer"}, []reflect.Type{reflect.TypeFor[topoWriterOnly]()})
		},
	)
}

func TestValidateTopologyPanicsOnExclusiveReaderConflict(t *testing.T) {
	require.PanicsWithValue(t,
		"actorrt: conflict with exclusive reader for `int`:\nexclusive readers: `actor`\n    other readers: `actor`",
		func() {
			validateTopology([]string{"actor"}, []reflect.Type{reflect.TypeFor[topoExclusiveConflict]()})
		},
	)
}

func TestValidateTopologyAcceptsSoleExclusiveReader(t *testing.T) {
	require.NotPanics(t, func() {
		validateTopology([]string{"actor"}, []reflect.Type{reflect.TypeFor[topoExclusiveAlone]()})
	})
}
