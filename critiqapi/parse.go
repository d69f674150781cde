package critiqapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

var dumpAPICalls = os.Getenv("GO_CRITIQ_DEBUG") == "1"

type errorBody struct {
	Message string `json:"message"`
}

// ParseAPIResponse unmarshals an HTTP response into one of our
// response data structures. Any non-2xx status yields an *APIError
// carrying the server-supplied message if the body has one, else
// the given fallback message.
func ParseAPIResponse(dst interface{}, res *http.Response, fallback string) error {
	if res == nil || res.Body == nil {
		return fmt.Errorf("No response from server")
	}

	bodyReader := res.Body
	defer bodyReader.Close()

	body, err := ioutil.ReadAll(bodyReader)
	if err != nil {
		return errors.WithStack(err)
	}

	if dumpAPICalls {
		fmt.Fprintf(os.Stderr, "[response] %s\n", string(body))
	}

	if res.StatusCode/100 != 2 {
		eb := errorBody{}
		message := fallback
		if jsonErr := json.Unmarshal(body, &eb); jsonErr == nil && eb.Message != "" {
			message = eb.Message
		}
		return &APIError{Message: message, StatusCode: res.StatusCode}
	}

	if dst == nil {
		return nil
	}

	var intermediate interface{}
	err = json.NewDecoder(bytes.NewReader(body)).Decode(&intermediate)
	if err != nil {
		msg := fmt.Sprintf("JSON decode error: %s\n\nBody: %s\n\n", err.Error(), string(body))
		return errors.New(msg)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  dst,
		// the reference server is not above returning numbers as strings
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	err = decoder.Decode(intermediate)
	if err != nil {
		msg := fmt.Sprintf("mapstructure decode error: %s\n\nBody: %#v\n\n", err.Error(), intermediate)
		return errors.New(msg)
	}

	return nil
}
