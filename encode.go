package discordhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

const jsonContentType = "application/json"

// encodeBody picks the wire encoding for a message: plain JSON when there
// are no attachments, multipart/form-data otherwise.
func encodeBody(payload MessagePayload, files []FileAttachment) ([]byte, string, error) {
	if payload.AllowedMentions != nil {
		payload.AllowedMentions = payload.AllowedMentions.withParseNormalized()
	}
	if len(files) > 0 {
		return encodeMultipartBody(payload, files)
	}
	return encodeJSONBody(payload)
}

// encodeJSONBody marshals the payload for a plain JSON webhook request.
func encodeJSONBody(payload MessagePayload) ([]byte, string, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, "", WrapError(err, "failed to marshal webhook payload")
	}
	return payloadJSON, jsonContentType, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipartBody builds a multipart/form-data body carrying the JSON
// payload in a payload_json field and each attachment in a file[N] part.
func encodeMultipartBody(payload MessagePayload, files []FileAttachment) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, "", WrapError(err, "failed to marshal webhook payload")
	}
	if err := writer.WriteField("payload_json", string(payloadJSON)); err != nil {
		return nil, "", WrapError(err, "failed to write payload_json to multipart")
	}

	for i, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="file[%d]"; filename="%s"`, i, quoteEscaper.Replace(file.Name)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", WrapError(err, "failed to create form file")
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", WrapError(err, "failed to write file data to form")
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", WrapError(err, "failed to close multipart writer")
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}
