package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"catalog/internal/response"
	"catalog/internal/validator"
)

const CtxPayloadKey = "payload" // map[string]any（検証・整形済み）

var errNotObject = errors.New("body is not a JSON object")

// リクエストボディをschemaで検証するミドルウェア。
// 通過した値はCtxPayloadKeyに入る。
func ValidateBody(schema validator.Schema) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := readObject(c.Request().Body)
			if err != nil {
				return response.Error(c, http.StatusBadRequest, "Invalid JSON body")
			}

			clean, errs := schema.Validate(body)
			if len(errs) > 0 {
				return response.ValidationFailed(c, http.StatusBadRequest, errs)
			}

			c.Set(CtxPayloadKey, clean)
			return next(c)
		}
	}
}

// 空ボディは{}として扱う
func readObject(r io.Reader) (map[string]any, error) {
	if r == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON body")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}

// 検証済みペイロードをDTOへ詰め替える
func BindPayload(c echo.Context, dst any) error {
	payload, ok := c.Get(CtxPayloadKey).(map[string]any)
	if !ok {
		return errors.New("validated payload missing from context")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
