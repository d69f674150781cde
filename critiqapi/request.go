package critiqapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/pkg/errors"
)

// GamePayload is everything needed to create or update a game
// listing. When ThumbnailData is set, the encoded request switches
// from JSON to multipart form encoding.
type GamePayload struct {
	Title       string  `json:"title"`
	Publisher   string  `json:"publisher"`
	ReleaseDate string  `json:"release_date"`
	Description string  `json:"description"`
	GenreIDs    []int64 `json:"genres"`

	// Raw thumbnail image bytes, if a new thumbnail is being uploaded
	ThumbnailData []byte `json:"-"`
	// File name reported for the thumbnail part
	ThumbnailName string `json:"-"`
}

func (p GamePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Publisher, validation.Required),
		validation.Field(&p.ReleaseDate, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.GenreIDs, validation.Required),
	)
}

// EncodedRequest is a request body paired with its content type,
// ready to hand to a transport.
type EncodedRequest struct {
	ContentType string
	Body        []byte
}

// EncodeGamePayload builds the request body for a game create or
// update. It's a pure function: it inspects the payload and picks
// JSON, or multipart when a thumbnail blob is present. In the
// multipart encoding all scalar fields are coerced to their string
// form, and the genre ID list is JSON-serialized into a single field.
func EncodeGamePayload(p GamePayload) (*EncodedRequest, error) {
	if len(p.ThumbnailData) == 0 {
		body, err := json.Marshal(&p)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return &EncodedRequest{
			ContentType: "application/json",
			Body:        body,
		}, nil
	}

	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":        p.Title,
		"publisher":    p.Publisher,
		"release_date": p.ReleaseDate,
		"description":  p.Description,
	}
	for key, val := range fields {
		err := mw.WriteField(key, val)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	genres, err := json.Marshal(p.GenreIDs)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	err = mw.WriteField("genres", string(genres))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	name := p.ThumbnailName
	if name == "" {
		name = "thumbnail"
	}
	pw, err := mw.CreateFormFile("thumbnail", name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	_, err = pw.Write(p.ThumbnailData)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = mw.Close()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &EncodedRequest{
		ContentType: mw.FormDataContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// Reader returns a fresh reader over the encoded body
func (er *EncodedRequest) Reader() io.Reader {
	return bytes.NewReader(er.Body)
}

func (er *EncodedRequest) String() string {
	return fmt.Sprintf("(%s, %d bytes)", er.ContentType, len(er.Body))
}
