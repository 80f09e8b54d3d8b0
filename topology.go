package actorrt

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

type topologyBucket struct {
	typeName          string
	writers           []string
	exclusiveReaders  []string
	nonExclusiveReads []string
}

// validateTopology enumerates every handle field across every actor's store
// request type and panics if the combined set violates the single-writer
// protocol. It never constructs an actor or binds a handle: it only walks
// struct field types with reflect, so every violation is caught before any
// actor's constructor — or even its async request phase — runs.
//
// Panic wording matches the grounded original
// (datastore/single_writer/slot.rs's validate_access_pattern and
// datastore/store_request.rs's "no slot" case), adapted to Go's %q-free,
// backtick-quoted type name formatting.
//
// On success it also returns, per storable type, the total number of reader
// handles (exclusive and non-exclusive combined) bound to that type across
// the whole actor set. A fresh [Datastore] is seeded with these counts so
// every slot knows, before any actor is constructed, exactly how many
// readers its Writer must wait on — fixed once and for all by the topology,
// not by whichever handles happen to have bound by the time a write occurs.
func validateTopology(actorNames []string, reqTypes []reflect.Type) map[reflect.Type]int {
	buckets := make(map[reflect.Type]*topologyBucket)
	var order []reflect.Type

	for i, reqType := range reqTypes {
		actorName := actorNames[i]
		for _, rf := range describeRequest(reqType) {
			st := rf.spec.storableType()
			b, ok := buckets[st]
			if !ok {
				b = &topologyBucket{typeName: st.String()}
				buckets[st] = b
				order = append(order, st)
			}
			switch rf.spec.handleKind() {
			case handleKindWriter:
				b.writers = append(b.writers, actorName)
			case handleKindExclusiveReader:
				b.exclusiveReaders = append(b.exclusiveReaders, actorName)
			case handleKindReader, handleKindInitializedReader:
				b.nonExclusiveReads = append(b.nonExclusiveReads, actorName)
			}
		}
	}

	readerCounts := make(map[reflect.Type]int, len(order))

	for _, st := range order {
		b := buckets[st]
		sort.Strings(b.writers)
		sort.Strings(b.exclusiveReaders)
		sort.Strings(b.nonExclusiveReads)

		if len(b.writers) == 0 {
			panic(fmt.Sprintf("actorrt: no slot available for `%s`", b.typeName))
		}
		if len(b.writers) != 1 {
			panic(fmt.Sprintf("actorrt: multiple writers for `%s`: %s", b.typeName, formatNames(b.writers)))
		}

		readers := len(b.exclusiveReaders) + len(b.nonExclusiveReads)
		if readers == 0 {
			panic(fmt.Sprintf("actorrt: missing reader for `%s`, written by: %s", b.typeName, formatNames(b.writers)))
		}
		if len(b.exclusiveReaders) > 0 && readers != 1 {
			panic(fmt.Sprintf(
				"actorrt: conflict with exclusive reader for `%s`:\nexclusive readers: %s\n    other readers: %s",
				b.typeName, formatNames(b.exclusiveReaders), formatNames(b.nonExclusiveReads),
			))
		}

		readerCounts[st] = readers
	}

	return readerCounts
}

// formatNames backtick-quotes and comma-joins names, or reports "nothing"
// for an empty list.
func formatNames(names []string) string {
	if len(names) == 0 {
		return "nothing"
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return strings.Join(quoted, ", ")
}
