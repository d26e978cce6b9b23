// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package webapi

import (
	"bytes"
	"encoding"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/zeebo/blake3"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json; charset=utf-8"
)

// boundaryDomainKey separates multipart boundary derivation from any
// other use of BLAKE3 over request content. ASCII, zero-padded to 32
// bytes.
var boundaryDomainKey = [32]byte{
	's', 'l', 'a', 'c', 'k', 'w', 'e', 'b', '.', 'm', 'u', 'l', 't', 'i', 'p', 'a',
	'r', 't', '.', 'b', 'o', 'u', 'n', 'd', 'a', 'r', 'y', 0, 0, 0, 0, 0,
}

// encodedRequest is a request's wire form, before URL and headers.
type encodedRequest struct {
	query       string
	body        []byte
	contentType string
}

// requestField is one populated request field. parameter marks string
// values supplied through Parameterized.
type requestField struct {
	name      string
	value     reflect.Value
	parameter bool
}

// fileField is one populated *FileUpload field.
type fileField struct {
	name   string
	upload *FileUpload
}

// encodeRequest serializes request's populated fields in the shape
// spec describes. The output depends only on the request value.
func encodeRequest(spec MethodSpec, request Request) (*encodedRequest, error) {
	fields, files, err := collectFields(request)
	if err != nil {
		return nil, err
	}

	switch {
	case spec.HTTPMethod == http.MethodGet:
		if len(files) > 0 {
			return nil, fmt.Errorf("GET method cannot carry file content")
		}
		values, err := formValues(fields)
		if err != nil {
			return nil, err
		}
		return &encodedRequest{query: values.Encode()}, nil

	case len(files) > 0:
		return encodeMultipart(fields, files)

	case spec.Encoding == EncodingJSON:
		body, err := jsonBody(fields)
		if err != nil {
			return nil, err
		}
		return &encodedRequest{body: body, contentType: contentTypeJSON}, nil

	default:
		values, err := formValues(fields)
		if err != nil {
			return nil, err
		}
		return &encodedRequest{body: []byte(values.Encode()), contentType: contentTypeForm}, nil
	}
}

// collectFields walks the request's exported fields (descending into
// embedded structs) and returns the non-zero ones in declaration order.
func collectFields(request Request) ([]requestField, []fileField, error) {
	if parameterized, ok := request.(Parameterized); ok {
		return parameterFields(parameterized.Parameters()), nil, nil
	}

	value := reflect.ValueOf(request)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("nil %T request", request)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("request type %T is not a struct", request)
	}

	var fields []requestField
	var files []fileField
	walkStruct(value, &fields, &files)
	return fields, files, nil
}

var fileUploadType = reflect.TypeFor[*FileUpload]()

func walkStruct(value reflect.Value, fields *[]requestField, files *[]fileField) {
	structType := value.Type()
	for index := range structType.NumField() {
		info := structType.Field(index)
		fieldValue := value.Field(index)
		tag := info.Tag.Get("json")

		if info.Anonymous && info.Type.Kind() == reflect.Struct && tag == "" {
			walkStruct(fieldValue, fields, files)
			continue
		}
		if !info.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = info.Name
		}
		if fieldValue.IsZero() {
			continue
		}
		if info.Type == fileUploadType {
			*files = append(*files, fileField{name: name, upload: fieldValue.Interface().(*FileUpload)})
			continue
		}
		*fields = append(*fields, requestField{name: name, value: fieldValue})
	}
}

func parameterFields(params map[string]string) []requestField {
	names := make([]string, 0, len(params))
	for name, value := range params {
		if value != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	fields := make([]requestField, 0, len(names))
	for _, name := range names {
		fields = append(fields, requestField{name: name, value: reflect.ValueOf(params[name]), parameter: true})
	}
	return fields
}

func formValues(fields []requestField) (url.Values, error) {
	values := make(url.Values, len(fields))
	for _, field := range fields {
		text, err := formValue(field.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", field.name, err)
		}
		values.Set(field.name, text)
	}
	return values, nil
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// formValue renders one field as form text: scalars as their literal
// text, string lists comma-joined, TextMarshalers (timestamps) as their
// text, and anything structured (blocks, attachments, objects) as JSON.
func formValue(value reflect.Value) (string, error) {
	if value.Type().Implements(textMarshalerType) {
		text, err := value.Interface().(encoding.TextMarshaler).MarshalText()
		return string(text), err
	}

	switch value.Kind() {
	case reflect.Pointer:
		return formValue(value.Elem())
	case reflect.String:
		return value.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(value.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		if value.Type().Elem().Kind() == reflect.String {
			items := make([]string, value.Len())
			for index := range items {
				items[index] = value.Index(index).String()
			}
			return strings.Join(items, ","), nil
		}
	}

	data, err := marshalJSON(value.Interface())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// jsonBody renders fields as one JSON object. Keys are sorted, so the
// body is deterministic.
func jsonBody(fields []requestField) ([]byte, error) {
	object := make(map[string]json.RawMessage, len(fields))
	for _, field := range fields {
		if field.parameter && isStructuredJSON(field.value.String()) {
			object[field.name] = json.RawMessage(field.value.String())
			continue
		}
		data, err := marshalJSON(field.value.Interface())
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", field.name, err)
		}
		object[field.name] = data
	}
	return marshalJSON(object)
}

// marshalJSON is json.Marshal without HTML escaping, so mrkdwn such as
// "<@U1>" and "&" reaches Slack as written.
func marshalJSON(value any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// isStructuredJSON reports whether text is a JSON object or array.
func isStructuredJSON(text string) bool {
	if !gjson.Valid(text) {
		return false
	}
	parsed := gjson.Parse(text)
	return parsed.IsObject() || parsed.IsArray()
}

// encodeMultipart writes fields as form parts and files as file parts.
// The boundary is derived from the content so the encoding is
// deterministic.
func encodeMultipart(fields []requestField, files []fileField) (*encodedRequest, error) {
	values := make([][2]string, 0, len(fields))
	hasher, err := blake3.NewKeyed(boundaryDomainKey[:])
	if err != nil {
		panic("webapi: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	for _, field := range fields {
		text, err := formValue(field.value)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", field.name, err)
		}
		values = append(values, [2]string{field.name, text})
		writeHashed(hasher, field.name, []byte(text))
	}
	for _, file := range files {
		writeHashed(hasher, file.name, []byte(file.upload.Filename))
		writeHashed(hasher, "", file.upload.Content)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.SetBoundary("slackweb-" + hex.EncodeToString(hasher.Sum(nil)[:20])); err != nil {
		return nil, err
	}
	for _, value := range values {
		if err := writer.WriteField(value[0], value[1]); err != nil {
			return nil, err
		}
	}
	for _, file := range files {
		filename := file.upload.Filename
		if filename == "" {
			filename = file.name
		}
		part, err := writer.CreateFormFile(file.name, filename)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(file.upload.Content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return &encodedRequest{body: body.Bytes(), contentType: writer.FormDataContentType()}, nil
}

// writeHashed feeds a length-prefixed name and value to hasher, so
// adjacent fields cannot run together.
func writeHashed(hasher *blake3.Hasher, name string, value []byte) {
	var length [20]byte
	hasher.Write(strconv.AppendInt(length[:0], int64(len(name)), 10))
	hasher.Write([]byte{':'})
	hasher.Write([]byte(name))
	hasher.Write(strconv.AppendInt(length[:0], int64(len(value)), 10))
	hasher.Write([]byte{':'})
	hasher.Write(value)
}
