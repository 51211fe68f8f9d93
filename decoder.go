/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Message decoder
 */

package goipp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// messageDecoder decodes the binary wire representation of a Message.
type messageDecoder struct {
	in      io.Reader      // Input stream
	off     int            // Offset of last read
	cnt     int            // Count of read bytes
	options DecoderOptions // Options
}

// decode decodes the message
func (md *messageDecoder) decode(m *Message) error {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  Code (Operation or Status)
	//   4 bytes:  RequestID
	//   variable: attributes
	//   1 byte:   TagEnd

	var err error
	m.Version, err = md.decodeVersion()
	if err == nil {
		m.Code, err = md.decodeCode()
	}
	if err == nil {
		var id uint32
		id, err = md.decodeU32()
		m.RequestID = int32(id)
	}

	done := false
	var group *Attributes
	var prev *Attribute

	for err == nil && !done {
		var tag Tag
		tag, err = md.decodeTag()
		if err != nil {
			break
		}

		if tag.IsDelimiter() {
			prev = nil
		}

		if tag.IsGroup() {
			m.Groups.Add(Group{Tag: tag})
		}

		switch {
		case tag == TagZero:
			err = errors.New("invalid tag 0")

		case tag == TagEnd:
			done = true

		case tag.IsGroup():
			group = m.groupField(tag)

		default:
			err = md.decodeValue(m, tag, &group, &prev)
		}
	}

	if err != nil {
		switch err.(type) {
		case *MalformedStream, *UnknownValueTag:
			// Already a typed decode error a caller may want to
			// distinguish with errors.As - pass it through unwrapped.
		default:
			err = &MalformedStream{Offset: md.off, Msg: err.Error()}
		}
	}

	return err
}

// decodeValue decodes a single non-delimiter tag: either a new
// attribute, or an additional value continuing the previous one
// (the 1setOf convention - a zero-length name means "same attribute
// as before").
func (md *messageDecoder) decodeValue(m *Message, tag Tag, group **Attributes, prev **Attribute) error {
	if tag == TagMemberName || tag == TagEndCollection {
		return fmt.Errorf("unexpected tag %s", tag)
	}

	if md.options.StrictTags && !tag.IsDelimiter() && tag.Type() == TypeBinary &&
		!isKnownBinaryTag(tag) {
		return &UnknownValueTag{Tag: tag}
	}

	attr, err := md.decodeAttribute(tag)
	if err != nil {
		return err
	}

	if tag == TagBeginCollection {
		attr.Values[0].V, err = md.decodeCollection(1)
		if err != nil {
			return err
		}
	}

	switch {
	case attr.Name == "":
		if *prev == nil {
			return errors.New("additional value without preceding attribute")
		}

		v := attr.Values[0]
		(*prev).Values.Add(v.T, v.V)

		gLast := &m.Groups[len(m.Groups)-1]
		aLast := &gLast.Attrs[len(gLast.Attrs)-1]
		aLast.Values.Add(v.T, v.V)

	case *group != nil:
		(*group).Add(attr)
		*prev = &(**group)[len(**group)-1]
		m.Groups[len(m.Groups)-1].Add(attr)

	default:
		return errors.New("attribute without a group")
	}

	return nil
}

// isKnownBinaryTag reports whether tag is a value tag this package
// specifically recognizes as carrying octet-string/unknown-binary
// content, as opposed to merely falling into Tag.Type's lenient
// default case.
func isKnownBinaryTag(tag Tag) bool {
	return tag == TagString
}

// decodeCollection decodes a Collection value.
//
// A Collection is like a nested object: an attribute whose value is
// a sequence of named attributes. Collections may nest up to
// DecoderOptions.MaxCollectionDepth levels.
//
// Wire format:
//
//	ATTR: Tag = TagBeginCollection,            - the outer attribute that
//	      Name = "name", value - ignored         contains the collection
//
//	ATTR: Tag = TagMemberName, name = "",      - member name  \
//	      value - string, name of the next                     |
//	      member                                               | repeated for
//	                                                            | each member
//	ATTR: Tag = any attribute tag, name = "",  - repeated for  |
//	      value = member value                   multi-value  /
//	                                            members
//
//	ATTR: Tag = TagEndCollection, name = "",
//	      value - ignored
func (md *messageDecoder) decodeCollection(depth int) (Collection, error) {
	if depth > md.options.MaxCollectionDepth {
		return nil, fmt.Errorf("collection nesting exceeds %d levels",
			md.options.MaxCollectionDepth)
	}

	collection := make(Collection, 0)
	memberName := ""

	for {
		tag, err := md.decodeTag()
		if err != nil {
			return nil, err
		}

		if tag.IsDelimiter() {
			return nil, fmt.Errorf("collection: unexpected tag %s", tag)
		}

		if (tag == TagMemberName || tag == TagEndCollection) && memberName != "" {
			return nil, fmt.Errorf("collection: unexpected %s, expected value tag", tag)
		}

		attr, err := md.decodeAttribute(tag)
		if err != nil {
			return nil, err
		}

		switch tag {
		case TagEndCollection:
			return collection, nil

		case TagMemberName:
			memberName = string(attr.Values[0].V.(String))
			if memberName == "" {
				return nil, fmt.Errorf("collection: %s value is empty", tag)
			}

		case TagBeginCollection:
			attr.Values[0].V, err = md.decodeCollection(depth + 1)
			if err != nil {
				return nil, err
			}
			fallthrough

		default:
			if md.options.EnableWorkarounds &&
				memberName == "" && attr.Name != "" {
				// Workaround for devices (e.g. Pantum M7300FDW) that
				// violate collection encoding rules by using named
				// attributes instead of TagMemberName.
				memberName = attr.Name
			}

			switch {
			case memberName != "":
				attr.Name = memberName
				collection = append(collection, attr)
				memberName = ""
			case len(collection) > 0:
				l := len(collection)
				collection[l-1].Values.Add(tag, attr.Values[0].V)
			default:
				return nil, fmt.Errorf("collection: unexpected %s, expected %s",
					tag, TagMemberName)
			}
		}
	}
}

// decodeTag decodes a Tag
func (md *messageDecoder) decodeTag() (Tag, error) {
	t, err := md.decodeU8()
	return Tag(t), err
}

// decodeVersion decodes a Version
func (md *messageDecoder) decodeVersion() (Version, error) {
	code, err := md.decodeU16()
	return Version(code), err
}

// decodeCode decodes a Code
func (md *messageDecoder) decodeCode() (Code, error) {
	code, err := md.decodeU16()
	return Code(code), err
}

// decodeAttribute decodes a single attribute.
//
// Wire format:
//
//	1   byte:   Tag
//	2+N bytes:  Name length (2 bytes) + name string
//	2+N bytes:  Value length (2 bytes) + value bytes
//
// For the extended tag format, Tag is encoded as TagExtension and 4
// bytes of the actual tag value are prepended to the value bytes.
func (md *messageDecoder) decodeAttribute(tag Tag) (Attribute, error) {
	var attr Attribute

	name, err := md.decodeString()
	if err != nil {
		return Attribute{}, err
	}
	attr.Name = name

	value, err := md.decodeBytes()
	if err != nil {
		return Attribute{}, err
	}

	if tag == TagExtension {
		if len(value) < 4 {
			return Attribute{}, errors.New("extension tag truncated")
		}

		t := binary.BigEndian.Uint32(value[:4])
		if t > 0x7fffffff {
			return Attribute{}, fmt.Errorf("extension tag 0x%8.8x out of range", t)
		}
	}

	if err := attr.unpack(tag, value); err != nil {
		return Attribute{}, err
	}

	return attr, nil
}

// decodeU8 decodes an 8-bit integer
func (md *messageDecoder) decodeU8() (uint8, error) {
	buf := make([]byte, 1)
	err := md.read(buf)
	return buf[0], err
}

// decodeU16 decodes a 16-bit integer
func (md *messageDecoder) decodeU16() (uint16, error) {
	buf := make([]byte, 2)
	err := md.read(buf)
	return binary.BigEndian.Uint16(buf), err
}

// decodeU32 decodes a 32-bit integer
func (md *messageDecoder) decodeU32() (uint32, error) {
	buf := make([]byte, 4)
	err := md.read(buf)
	return binary.BigEndian.Uint32(buf), err
}

// decodeBytes decodes a length-prefixed sequence of bytes
func (md *messageDecoder) decodeBytes() ([]byte, error) {
	length, err := md.decodeU16()
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)
	if err := md.read(data); err != nil {
		return nil, err
	}

	return data, nil
}

// decodeString decodes a length-prefixed string, applying the same
// lossy UTF-8 scrubbing as String.String() - names and other plain
// strings read off the wire never fail to decode, they just degrade
// what the caller sees.
func (md *messageDecoder) decodeString() (string, error) {
	data, err := md.decodeBytes()
	if err != nil {
		return "", err
	}
	s := string(data)
	if strings.ToValidUTF8(s, "") == s {
		return s, nil
	}
	return strings.ToValidUTF8(s, "�"), nil
}

// read reads a piece of raw data from the input stream
func (md *messageDecoder) read(data []byte) error {
	md.off = md.cnt

	for len(data) > 0 {
		n, err := md.in.Read(data)
		if n > 0 {
			md.cnt += n
			data = data[n:]
		} else {
			md.off = md.cnt
			if err == nil || err == io.EOF {
				err = errors.New("message truncated")
			}
			return err
		}
	}

	return nil
}
