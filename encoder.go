/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Message encoder
 */

package goipp

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// messageEncoder encodes a Message into its binary wire representation.
type messageEncoder struct {
	out io.Writer // Output stream
}

// encode encodes the message
func (me *messageEncoder) encode(m *Message) error {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  Code (Operation or Status)
	//   4 bytes:  RequestID
	//   variable: attributes
	//   1 byte:   TagEnd

	var err error
	err = me.encodeU16(uint16(m.Version))
	if err == nil {
		err = me.encodeU16(uint16(m.Code))
	}
	if err == nil {
		err = me.encodeU32(uint32(m.RequestID))
	}

	for _, grp := range m.Groups {
		if err != nil {
			break
		}

		err = me.encodeTag(grp.Tag)
		if err == nil {
			for _, attr := range grp.Attrs {
				if attr.Name == "" {
					err = errors.New("attribute without name")
				} else {
					err = me.encodeAttr(attr)
				}
				if err != nil {
					break
				}
			}
		}
	}

	if err == nil {
		err = me.encodeTag(TagEnd)
	}

	return err
}

// encodeAttr encodes a single attribute, including every value in
// its 1setOf sequence - only the first value carries the name, every
// additional value is encoded name-less.
func (me *messageEncoder) encodeAttr(attr Attribute) error {
	// Wire format:
	//     1 byte:   Tag
	//     2 bytes:  len(Name)
	//     variable: name
	//     2 bytes:  len(Value)
	//     variable: Value
	if len(attr.Values) == 0 {
		return errors.New("attribute without value")
	}

	name := attr.Name
	for _, val := range attr.Values {
		if err := me.encodeTag(val.T); err != nil {
			return err
		}
		if err := me.encodeName(name); err != nil {
			return err
		}
		if err := me.encodeValue(val.T, val.V); err != nil {
			return err
		}

		name = "" // Each additional value comes without a name
	}

	return nil
}

// encodeU8 encodes an 8-bit integer
func (me *messageEncoder) encodeU8(v uint8) error {
	return me.write([]byte{v})
}

// encodeU16 encodes a 16-bit integer
func (me *messageEncoder) encodeU16(v uint16) error {
	return me.write([]byte{byte(v >> 8), byte(v)})
}

// encodeU32 encodes a 32-bit integer
func (me *messageEncoder) encodeU32(v uint32) error {
	return me.write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// encodeTag encodes a Tag
func (me *messageEncoder) encodeTag(tag Tag) error {
	return me.encodeU8(byte(tag))
}

// encodeName encodes an attribute name
func (me *messageEncoder) encodeName(name string) error {
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("attribute name exceeds %d bytes", len(name))
	}

	if err := me.encodeU16(uint16(len(name))); err != nil {
		return err
	}
	return me.write([]byte(name))
}

// encodeValue encodes an attribute value, after checking it agrees
// with the Type that tag demands.
func (me *messageEncoder) encodeValue(tag Tag, v Value) error {
	tagType := tag.Type()
	switch tagType {
	case TypeInvalid:
		return fmt.Errorf("tag %s cannot be used for a value", tag)
	case TypeVoid:
		v = Void{} // Ignore supplied value
	default:
		if tagType != v.Type() {
			return fmt.Errorf("tag %s: %s value required, %s present",
				tag, tagType, v.Type())
		}
	}

	data, err := v.encode()
	if err != nil {
		return err
	}

	if len(data) > math.MaxUint16 {
		return fmt.Errorf("attribute value exceeds %d bytes", len(data))
	}

	if err := me.encodeU16(uint16(len(data))); err != nil {
		return err
	}
	if err := me.write(data); err != nil {
		return err
	}

	if collection, ok := v.(Collection); ok {
		return me.encodeCollection(collection)
	}

	return nil
}

// encodeCollection encodes the members of a Collection value,
// following the outer TagBeginCollection attribute already written
// by encodeValue: each member as a TagMemberName/value pair, closed
// by a TagEndCollection marker.
func (me *messageEncoder) encodeCollection(collection Collection) error {
	for _, attr := range collection {
		if attr.Name == "" {
			return errors.New("collection member without name")
		}

		memberName := MakeAttribute("", TagMemberName, String(attr.Name))
		if err := me.encodeAttr(memberName); err != nil {
			return err
		}

		if err := me.encodeAttr(Attribute{Values: attr.Values}); err != nil {
			return err
		}
	}

	return me.encodeAttr(MakeAttribute("", TagEndCollection, Void{}))
}

// write writes a piece of raw data to the output stream
func (me *messageEncoder) write(data []byte) error {
	for len(data) > 0 {
		n, err := me.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}

	return nil
}
