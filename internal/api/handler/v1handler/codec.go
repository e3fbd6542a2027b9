package v1handler

import (
	"io"
	"net/http"

	"ipconv/pkg/domain"
	"ipconv/pkg/ipbin"
	"ipconv/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// writeJSON replies with status and the document produced by encode.
func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// readBody reads at most limit bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = 4096
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}

	return body, nil
}

// decodeObject walks the top-level JSON object in data, calling fn for each key.
func decodeObject(data []byte, fn func(d *jx.Decoder, key string) error) error {
	if err := jx.DecodeBytes(data).Obj(fn); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode json"), "invalid request body")
	}

	return nil
}

func decodeField(d *jx.Decoder) (domain.Field, error) {
	var f domain.Field
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "value":
			f.Value, err = d.Str()
		case "error":
			f.Error, err = d.Str()
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}

		return nil
	})

	return f, err //nolint: wrapcheck
}

// decodeState reads a state previously returned by the API. Derived keys
// (state, display) are ignored and the binary value is re-stripped.
func decodeState(d *jx.Decoder) (domain.State, error) {
	var s domain.State
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case string(domain.FieldAddress):
			s.Address, err = decodeField(d)
		case string(domain.FieldBinary):
			s.Binary, err = decodeField(d)
			s.Binary.Value = ipbin.Strip(s.Binary.Value)
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrapf(err, "state %q", key)
		}

		return nil
	})

	return s, err //nolint: wrapcheck
}

// decodeEdit reads {"field": ..., "value": ...} and checks the field name.
func decodeEdit(data []byte) (domain.Edit, error) {
	var edit domain.Edit
	err := decodeObject(data, func(d *jx.Decoder, key string) error {
		switch key {
		case "field":
			v, err := d.Str()
			edit.Field = domain.FieldName(v)

			return err //nolint: wrapcheck
		case "value":
			v, err := d.Str()
			edit.Value = v

			return err //nolint: wrapcheck
		default:
			return d.Skip() //nolint: wrapcheck
		}
	})
	if err != nil {
		return domain.Edit{}, err
	}
	if !edit.Field.Valid() {
		return domain.Edit{}, serrors.With(serrors.ErrBadRequest, "unknown field %q", edit.Field)
	}

	return edit, nil
}

func encodeError(e *jx.Encoder, res ErrorResponse) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()
}

func encodeConversion(e *jx.Encoder, c *domain.Conversion) {
	e.ObjStart()
	e.FieldStart("address")
	e.Str(c.Address)
	e.FieldStart("binary")
	e.Str(c.Binary)
	e.FieldStart("display")
	e.Str(c.Display)
	e.ObjEnd()
}

func encodeField(e *jx.Encoder, f domain.Field, display bool) {
	e.ObjStart()
	e.FieldStart("value")
	e.Str(f.Value)
	if display {
		e.FieldStart("display")
		e.Str(ipbin.FormatForDisplay(f.Value))
	}
	e.FieldStart("error")
	e.Str(f.Error)
	e.FieldStart("state")
	e.Str(string(f.State()))
	e.ObjEnd()
}

func encodeState(e *jx.Encoder, s domain.State) {
	e.ObjStart()
	e.FieldStart(string(domain.FieldAddress))
	encodeField(e, s.Address, false)
	e.FieldStart(string(domain.FieldBinary))
	encodeField(e, s.Binary, true)
	e.ObjEnd()
}
