package client

import (
	goipp "github.com/alexpevzner/ippclient"
)

// RequireInteger looks up name in attrs and returns its Integer value,
// or a *MissingAttribute/*InvalidAttributeType error if it isn't
// present as an Integer - the typed-accessor error taxonomy is raised
// here, not by the parser, which stays lenient about unknown/odd
// attributes per the decoder's own StrictTags option.
func RequireInteger(attrs goipp.Attributes, name string) (int, error) {
	attr, ok := attrs.Get(name)
	if !ok {
		return 0, &MissingAttribute{Name: name}
	}
	n, ok := attr.Integer()
	if !ok {
		return 0, &InvalidAttributeType{Name: name, Want: goipp.TypeInteger, Have: attrValueType(attr)}
	}
	return n, nil
}

// RequireText looks up name in attrs and returns its text value, or a
// *MissingAttribute/*InvalidAttributeType error.
func RequireText(attrs goipp.Attributes, name string) (string, error) {
	attr, ok := attrs.Get(name)
	if !ok {
		return "", &MissingAttribute{Name: name}
	}
	s, ok := attr.Text()
	if !ok {
		return "", &InvalidAttributeType{Name: name, Want: goipp.TypeString, Have: attrValueType(attr)}
	}
	return s, nil
}

// RequireBoolean looks up name in attrs and returns its Boolean
// value, or a *MissingAttribute/*InvalidAttributeType error.
func RequireBoolean(attrs goipp.Attributes, name string) (bool, error) {
	attr, ok := attrs.Get(name)
	if !ok {
		return false, &MissingAttribute{Name: name}
	}
	b, ok := attr.Boolean()
	if !ok {
		return false, &InvalidAttributeType{Name: name, Want: goipp.TypeBoolean, Have: attrValueType(attr)}
	}
	return b, nil
}

func attrValueType(attr goipp.Attribute) goipp.Type {
	if len(attr.Values) == 0 {
		return goipp.TypeInvalid
	}
	return attr.Values[0].T.Type()
}
