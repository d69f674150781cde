package critiqapi

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EncodeGamePayloadJSON(t *testing.T) {
	req, err := EncodeGamePayload(GamePayload{
		Title:       "Outer Wilds",
		Publisher:   "Annapurna",
		ReleaseDate: "2019-05-28",
		Description: "22 minutes",
		GenreIDs:    []int64{1, 3},
	})
	require.NoError(t, err)

	assert.EqualValues(t, "application/json", req.ContentType)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &decoded))
	assert.EqualValues(t, "Outer Wilds", decoded["title"])
	assert.EqualValues(t, "2019-05-28", decoded["release_date"])
	assert.EqualValues(t, []interface{}{float64(1), float64(3)}, decoded["genres"])
	// thumbnail fields never leak into the JSON body
	assert.NotContains(t, decoded, "thumbnail")
}

func Test_EncodeGamePayloadMultipart(t *testing.T) {
	thumbnail := []byte{0x89, 'P', 'N', 'G'}
	req, err := EncodeGamePayload(GamePayload{
		Title:         "Outer Wilds",
		Publisher:     "Annapurna",
		ReleaseDate:   "2019-05-28",
		Description:   "22 minutes",
		GenreIDs:      []int64{1, 3},
		ThumbnailData: thumbnail,
		ThumbnailName: "cover.png",
	})
	require.NoError(t, err)

	mediaType, mtParams, err := mime.ParseMediaType(req.ContentType)
	require.NoError(t, err)
	assert.EqualValues(t, "multipart/form-data", mediaType)

	mr := multipart.NewReader(req.Reader(), mtParams["boundary"])
	fields := make(map[string]string)
	var fileName string
	var fileData []byte

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(part)
		require.NoError(t, err)

		if part.FileName() != "" {
			fileName = part.FileName()
			fileData = data
		} else {
			fields[part.FormName()] = string(data)
		}
	}

	assert.EqualValues(t, "Outer Wilds", fields["title"])
	assert.EqualValues(t, "Annapurna", fields["publisher"])
	assert.EqualValues(t, "2019-05-28", fields["release_date"])
	// the genre list travels as one JSON-encoded field
	assert.EqualValues(t, "[1,3]", fields["genres"])

	assert.EqualValues(t, "cover.png", fileName)
	assert.EqualValues(t, thumbnail, fileData)
}

func Test_GamePayloadValidate(t *testing.T) {
	valid := GamePayload{
		Title:       "Outer Wilds",
		Publisher:   "Annapurna",
		ReleaseDate: "2019-05-28",
		Description: "22 minutes",
		GenreIDs:    []int64{1},
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	err := missingTitle.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "title"))

	noGenres := valid
	noGenres.GenreIDs = nil
	assert.Error(t, noGenres.Validate())
}
