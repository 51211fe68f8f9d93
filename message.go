/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP messages
 */

package goipp

import (
	"bytes"
	"fmt"
	"io"
)

// DefaultVersion is the default IPP protocol version (1.1), for passing
// to NewRequest and NewResponse.
const DefaultVersion Version = 0x0101

// Version represents the IPP protocol version, encoded as
// (major<<8 | minor).
type Version uint16

// String returns the "major.minor" representation of Version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v>>8, v&0xff)
}

// Message represents a single IPP message: a request or a response,
// sharing the same wire format. Code is interpreted as Op in a
// request and as Status in a response - use RequestCode/StatusCode
// helpers when the distinction matters.
//
// Groups holds every attribute group in wire order, including any
// repeated group of the same kind and any group whose tag this
// package doesn't specifically name. The named fields below
// (Operation, Job, Printer, ...) are convenience views: the first
// group of their kind, kept in sync with Groups by Encode/Decode.
type Message struct {
	Version   Version // Protocol version
	Code      Code    // Opcode for request, status for response
	RequestID int32   // Request ID

	Groups Groups // All attribute groups, in wire order

	// Convenience accessors for the first group of each kind. These
	// are populated by Decode and consulted by Encode only if Groups
	// itself is empty - fill Groups.Add for anything beyond the
	// simplest single-group-per-kind request.
	Operation         Attributes
	Job               Attributes
	Printer           Attributes
	Unsupported       Attributes
	Subscription      Attributes
	EventNotification Attributes
	Resource          Attributes
	Document          Attributes
	System            Attributes
	Future11          Attributes
	Future12          Attributes
	Future13          Attributes
	Future14          Attributes
	Future15          Attributes
}

// Code is either an Op (for requests) or a Status (for responses),
// both defined as Code = uint16 underneath.
type Code uint16

// NewRequest creates a new request Message.
func NewRequest(version Version, op Op, id int32) *Message {
	return &Message{
		Version:   version,
		Code:      Code(op),
		RequestID: id,
	}
}

// NewResponse creates a new response Message, conventionally sharing
// the RequestID of the request it answers.
func NewResponse(version Version, status Status, id int32) *Message {
	return &Message{
		Version:   version,
		Code:      Code(status),
		RequestID: id,
	}
}

// OpCode returns the Op carried by a request Message's Code.
func (m *Message) OpCode() Op { return Op(m.Code) }

// StatusCode returns the Status carried by a response Message's Code.
func (m *Message) StatusCode() Status { return Status(m.Code) }

// groupField returns a pointer to the named Attributes field that
// corresponds to tag, or nil if tag isn't one of the kinds this
// package names.
func (m *Message) groupField(tag Tag) *Attributes {
	switch tag {
	case TagOperationGroup:
		return &m.Operation
	case TagJobGroup:
		return &m.Job
	case TagPrinterGroup:
		return &m.Printer
	case TagUnsupportedGroup:
		return &m.Unsupported
	case TagSubscriptionGroup:
		return &m.Subscription
	case TagEventNotificationGroup:
		return &m.EventNotification
	case TagResourceGroup:
		return &m.Resource
	case TagDocumentGroup:
		return &m.Document
	case TagSystemGroup:
		return &m.System
	case TagFuture11Group:
		return &m.Future11
	case TagFuture12Group:
		return &m.Future12
	case TagFuture13Group:
		return &m.Future13
	case TagFuture14Group:
		return &m.Future14
	case TagFuture15Group:
		return &m.Future15
	}
	return nil
}

// syncNamedFromGroups rebuilds the named convenience fields from
// Groups, keeping the first group of each kind. Called after Decode.
func (m *Message) syncNamedFromGroups() {
	seen := map[Tag]bool{}
	for _, g := range m.Groups {
		if seen[g.Tag] {
			continue
		}
		if f := m.groupField(g.Tag); f != nil {
			*f = g.Attrs
			seen[g.Tag] = true
		}
	}
}

// syncGroupsFromNamed builds Groups from the populated named fields,
// in tag order, but only when Groups is empty; a non-empty Groups is
// left as it is and the named fields are ignored. Called by Encode so
// that a caller who only filled m.Operation, m.Job etc. (instead of
// Groups.Add) still gets a correctly-ordered wire message.
func (m *Message) syncGroupsFromNamed() {
	if len(m.Groups) != 0 {
		return
	}

	order := []struct {
		tag   Tag
		attrs Attributes
	}{
		{TagOperationGroup, m.Operation},
		{TagJobGroup, m.Job},
		{TagPrinterGroup, m.Printer},
		{TagUnsupportedGroup, m.Unsupported},
		{TagSubscriptionGroup, m.Subscription},
		{TagEventNotificationGroup, m.EventNotification},
		{TagResourceGroup, m.Resource},
		{TagDocumentGroup, m.Document},
		{TagSystemGroup, m.System},
		{TagFuture11Group, m.Future11},
		{TagFuture12Group, m.Future12},
		{TagFuture13Group, m.Future13},
		{TagFuture14Group, m.Future14},
		{TagFuture15Group, m.Future15},
	}

	for _, o := range order {
		if len(o.attrs) > 0 {
			m.Groups = append(m.Groups, Group{Tag: o.tag, Attrs: o.attrs})
		}
	}
}

// Equal checks two Messages for equality.
func (m *Message) Equal(m2 *Message) bool {
	return m.Version == m2.Version && m.Code == m2.Code &&
		m.RequestID == m2.RequestID && m.Groups.Equal(m2.Groups)
}

// Similar checks two Messages for logical equality - same as Equal,
// except groups and their attributes may be reordered.
func (m *Message) Similar(m2 *Message) bool {
	return m.Version == m2.Version && m.Code == m2.Code &&
		m.RequestID == m2.RequestID && m.Groups.Similar(m2.Groups)
}

// DeepCopy creates a deep copy of the Message.
func (m *Message) DeepCopy() *Message {
	m2 := *m
	m2.Groups = m.Groups.DeepCopy()
	m2.syncNamedFromGroups()
	return &m2
}

// Encode encodes the Message into its binary wire representation and
// writes it to out.
func (m *Message) Encode(out io.Writer) error {
	m.syncGroupsFromNamed()
	enc := messageEncoder{out: out}
	return enc.encode(m)
}

// EncodeBytes encodes the Message and returns the result as a byte slice.
func (m *Message) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes a Message from its binary wire representation, read
// from in. Decoding stops as soon as the header and attribute groups
// have been consumed - any trailing document data on in is left
// untouched for the caller to stream separately.
func (m *Message) Decode(in io.Reader) error {
	return m.DecodeEx(in, DecoderOptions{})
}

// DecoderOptions controls optional, non-default decoding behavior.
type DecoderOptions struct {
	// EnableWorkarounds enables workarounds for certain known-buggy
	// IPP implementations (see decoder.go for specifics).
	EnableWorkarounds bool

	// MaxCollectionDepth bounds how deeply TagBeginCollection values
	// may nest. Zero means the package default (16) applies - a
	// non-positive value here never disables the check, it only
	// selects the default, since IPP collections are attacker-
	// controlled input and an unbounded nesting depth is a stack-
	// exhaustion vector.
	MaxCollectionDepth int

	// StrictTags rejects value-tags this package does not recognize,
	// instead of the default lenient behavior of preserving them as
	// Binary values (see Tag.Type's default case).
	StrictTags bool
}

// defaultMaxCollectionDepth is used when DecoderOptions.MaxCollectionDepth
// is zero.
const defaultMaxCollectionDepth = 16

// DecodeEx decodes a Message, same as Decode, with DecoderOptions
// controlling optional behavior.
func (m *Message) DecodeEx(in io.Reader, options DecoderOptions) error {
	if options.MaxCollectionDepth <= 0 {
		options.MaxCollectionDepth = defaultMaxCollectionDepth
	}

	dec := messageDecoder{in: in, options: options}
	err := dec.decode(m)
	if err != nil {
		return err
	}
	m.syncNamedFromGroups()
	return nil
}

// Print writes a human-readable rendering of the Message to out -
// kept for callers that don't need a Formatter's extra control.
//
// Deprecated: use a Formatter for anything beyond quick debugging.
func (m *Message) Print(out io.Writer, request bool) error {
	f := NewFormatter()
	if request {
		f.FmtRequest(m)
	} else {
		f.FmtResponse(m)
	}
	_, err := f.WriteTo(out)
	return err
}
