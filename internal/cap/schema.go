package cap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CAP v1.2 schema identifier and namespace.
const (
	SchemaCAPv12 = "CAP-v1.2"
	NamespaceCAP = "urn:oasis:names:tc:emergency:cap:1.2"
)

// SchemaValidator checks a raw document against a named XML schema. The real
// deployment plugs in an XSD-backed validator; the default implementation
// checks well-formedness and the CAP envelope.
type SchemaValidator interface {
	Validate(document []byte, schemaName string) bool
}

type capSchemaValidator struct{}

// NewSchemaValidator returns the built-in CAP envelope validator.
func NewSchemaValidator() SchemaValidator {
	return &capSchemaValidator{}
}

func (v *capSchemaValidator) Validate(document []byte, schemaName string) bool {
	if schemaName != SchemaCAPv12 {
		return false
	}

	var alert capAlert
	if err := xml.Unmarshal(document, &alert); err != nil {
		return false
	}
	if alert.XMLName.Local != "alert" || alert.XMLName.Space != NamespaceCAP {
		return false
	}
	if alert.Identifier == "" || alert.MsgType == "" {
		return false
	}

	// Make sure there is no trailing garbage after the alert element.
	decoder := xml.NewDecoder(bytes.NewReader(document))
	depth := 0
	for {
		token, err := decoder.Token()
		if err != nil {
			return depth == 0
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest applies the supplementary structural check to a translated
// broadcast request, beyond XML well-formedness.
func ValidateRequest(req *BroadcastRequest) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) || len(invalid) == 0 {
		return fmt.Errorf("broadcast request failed schema validation: %w", err)
	}

	first := invalid[0]
	switch first.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s is a required property", fieldName(first))
	case "oneof":
		return fmt.Errorf("%s is not one of [%s]", fieldName(first), strings.ReplaceAll(first.Param(), " ", ", "))
	default:
		return fmt.Errorf("%s failed schema validation", fieldName(first))
	}
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "MsgType":
		return "msgType"
	case "CapEvent":
		return "cap_event"
	default:
		return strings.ToLower(fe.Field())
	}
}
