// Package soap implements the transport binding for the order-management
// backend: SOAP 1.1 document/literal over HTTP POST.
//
// The package deliberately mirrors the channel lifecycle of classic RPC
// stacks. A Client is created for exactly one invocation, moves through
// Created -> Opened -> (Closed | Faulted), and is released by the Invoker
// when the call finishes. A faulted client is aborted, never closed.
package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// envelopeNS is the SOAP 1.1 envelope namespace.
const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// Fault is a SOAP 1.1 fault returned by the backend. It implements error
// so callers can pull it out of a call failure with errors.As.
type Fault struct {
	Code    string `xml:"faultcode"`
	Message string `xml:"faultstring"`
	Actor   string `xml:"faultactor"`
	Detail  string `xml:"detail"`
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Code != "" {
		return fmt.Sprintf("soap fault %s: %s", f.Code, f.Message)
	}

	return "soap fault: " + f.Message
}

// requestEnvelope is the outbound envelope shape. The payload element
// carries its own namespace via its XMLName tag.
type requestEnvelope struct {
	XMLName xml.Name `xml:"soapenv:Envelope"`
	NS      string   `xml:"xmlns:soapenv,attr"`
	Body    requestBody
}

type requestBody struct {
	XMLName xml.Name `xml:"soapenv:Body"`
	Payload any
}

// responseEnvelope is the inbound envelope shape. Body content is kept
// as raw XML so the caller decides the result type; a Fault element is
// decoded eagerly because it changes the outcome of the call.
type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	Fault   *Fault `xml:"Fault"`
	Content []byte `xml:",innerxml"`
}

// encodeEnvelope wraps payload in a SOAP 1.1 envelope.
func encodeEnvelope(payload any) ([]byte, error) {
	env := requestEnvelope{
		NS:   envelopeNS,
		Body: requestBody{Payload: payload},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	if err := xml.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeEnvelope parses a SOAP 1.1 response envelope.
func decodeEnvelope(data []byte) (*responseEnvelope, error) {
	var env responseEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}

	return &env, nil
}

// decodeResult unmarshals the body content of a response envelope into
// result. The content is the operation's response element.
func decodeResult(env *responseEnvelope, result any) error {
	if err := xml.Unmarshal(env.Body.Content, result); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}
