package ics

import (
	"strings"
)

// Text is a TEXT value with its escapes decoded.  Params carries the
// parameters of the content line, such as LANGUAGE or ALTREP, untouched.
type Text struct {
	Value  string
	Params Params
}

func (t Text) String() string {
	return t.Value
}

// Language returns the LANGUAGE parameter, if any.
func (t Text) Language() string {
	return t.Params.First(ParameterLanguage)
}

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\N`, "\n",
	`\;`, `;`,
	`\,`, `,`,
)

// FromText decodes the escapes allowed in a TEXT value (RFC 5545 section 3.3.11).
func FromText(s string) string {
	return textUnescaper.Replace(s)
}

// ParseTextList splits a comma separated list of TEXT values, honouring
// escaped commas, and decodes each element.
func ParseTextList(s string) []string {
	parts := splitUnescaped(s, ',')
	for i := range parts {
		parts[i] = FromText(parts[i])
	}
	return parts
}

func textValue(cl ContentLine, _ *ParseConfiguration) (Text, error) {
	return Text{Value: FromText(cl.Value), Params: cl.Params}, nil
}

func stringValue(cl ContentLine, _ *ParseConfiguration) (string, error) {
	return FromText(cl.Value), nil
}

// rawValue keeps the value as written; used for URIs and identifiers that
// are not TEXT.
func rawValue(cl ContentLine, _ *ParseConfiguration) (string, error) {
	return cl.Value, nil
}

func textListValue(cl ContentLine, _ *ParseConfiguration) ([]string, error) {
	return ParseTextList(cl.Value), nil
}

// CalAddress is a CAL-ADDRESS value such as an ATTENDEE or ORGANIZER.
type CalAddress struct {
	Address string
	Params  Params
}

// Email strips a leading "mailto:" from the address.
func (a CalAddress) Email() string {
	if len(a.Address) >= 7 && strings.EqualFold(a.Address[:7], "mailto:") {
		return a.Address[7:]
	}
	return a.Address
}

// CommonName returns the CN parameter.
func (a CalAddress) CommonName() string {
	return a.Params.First(ParameterCn)
}

func calAddressValue(cl ContentLine, _ *ParseConfiguration) (CalAddress, error) {
	return CalAddress{Address: cl.Value, Params: cl.Params}, nil
}

// Attachment is an ATTACH value: a URI, or inline data when ENCODING=BASE64.
type Attachment struct {
	Value  string
	Params Params
}

func (a Attachment) IsBinary() bool {
	return strings.EqualFold(a.Params.First(ParameterValue), "BINARY") ||
		strings.EqualFold(a.Params.First(ParameterEncoding), "BASE64")
}

func attachmentValue(cl ContentLine, _ *ParseConfiguration) (Attachment, error) {
	return Attachment{Value: cl.Value, Params: cl.Params}, nil
}
