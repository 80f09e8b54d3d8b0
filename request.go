package actorrt

import (
	"context"
	"fmt"
	"reflect"
)

// handleKind distinguishes the four handle types for topology validation.
// InitializedReader counts alongside Reader as a non-exclusive reader: it
// differs only in when it is constructed, not in the access pattern it
// implies.
type handleKind int

const (
	handleKindWriter handleKind = iota
	handleKindReader
	handleKindInitializedReader
	handleKindExclusiveReader
)

// handleSpec is implemented by the zero value of every handle type
// (Writer[T], Reader[T], InitializedReader[T], ExclusiveReader[T]). It lets
// Execute walk an actor's store-request struct with reflect and bind each
// field without knowing T at compile time — the Go stand-in for the
// original's proc-macro-generated heterogeneous tuples (see SPEC_FULL.md §0).
type handleSpec interface {
	handleKind() handleKind
	storableType() reflect.Type
	definesSlot() bool
	bind(ctx context.Context, ds *Datastore, actorName string) (any, error)
}

var handleSpecType = reflect.TypeFor[handleSpec]()

// requestField describes one bindable field of a store-request struct.
type requestField struct {
	index []int
	spec  handleSpec
}

// describeRequest enumerates the exported fields of a store-request struct
// type, in declaration order. Panics if reqType is not (a pointer to) a
// struct, or if a field's type does not implement handleSpec — this is a
// programming error in the actor definition, not a runtime condition, so it
// panics rather than returning an error.
func describeRequest(reqType reflect.Type) []requestField {
	for reqType.Kind() == reflect.Pointer {
		reqType = reqType.Elem()
	}
	if reqType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("actorrt: store request type %s is not a struct", reqType))
	}
	var fields []requestField
	for i := 0; i < reqType.NumField(); i++ {
		f := reqType.Field(i)
		if !f.IsExported() {
			continue
		}
		if !f.Type.Implements(handleSpecType) {
			panic(fmt.Sprintf(
				"actorrt: invalid actor parameter type: field %s.%s (%s) is not a Writer, Reader, InitializedReader, or ExclusiveReader",
				reqType, f.Name, f.Type,
			))
		}
		spec := reflect.Zero(f.Type).Interface().(handleSpec)
		fields = append(fields, requestField{index: f.Index, spec: spec})
	}
	return fields
}

// bindRequest runs the async "request" phase for one actor: binding every
// field of its store-request struct against ds, in declaration order. This
// may block (an InitializedReader field waits for its slot's first value)
// but must not panic on a topology violation — that's already been ruled out
// by validateTopology before Execute ever calls this.
func bindRequest(ctx context.Context, reqType reflect.Type, ds *Datastore, actorName string) (reflect.Value, error) {
	reqValue := reflect.New(reqType).Elem()
	for _, rf := range describeRequest(reqType) {
		bound, err := rf.spec.bind(ctx, ds, actorName)
		if err != nil {
			return reflect.Value{}, err
		}
		reqValue.FieldByIndex(rf.index).Set(reflect.ValueOf(bound))
	}
	return reqValue, nil
}
