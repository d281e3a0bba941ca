// Package job defines the durable representation of a unit of work within
// the queue lifecycle: its task identity, payload, scheduling metadata, and
// current state.
//
// Job values are returned by Publish/Consume/Ack and by Observer queries.
// They are not intended to be constructed manually by user code; their
// fields reflect authoritative state maintained by the stored operations in
// package sql.
package job
