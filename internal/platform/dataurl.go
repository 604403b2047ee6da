package platform

import (
	"errors"
	"mime"
	"sort"
	"strings"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"github.com/vincent-petithory/dataurl"
)

// OctetStream is the data URI type of blobs without a usable declared type.
const OctetStream = "application/octet-stream"

// DataURLReader reads blobs into base64 data URIs carrying the declared
// media type.
type DataURLReader struct{}

func (DataURLReader) ReadAsDataURL(f *compressor.File) (string, error) {
	if f == nil {
		return "", errors.New("read: nil file")
	}
	return EncodeDataURL(f.Data, f.Type), nil
}

// EncodeDataURL builds a base64 data URI. Media types that do not parse as
// type/subtype are replaced with OctetStream.
func EncodeDataURL(data []byte, mediaType string) string {
	mt, params, err := mime.ParseMediaType(mediaType)
	if err != nil || strings.Count(mt, "/") != 1 {
		return dataurl.New(data, OctetStream).String()
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, params[k])
	}
	return dataurl.New(data, mt, pairs...).String()
}

// DecodeDataURL returns the payload and media type of a data URI.
func DecodeDataURL(src string) ([]byte, string, error) {
	du, err := dataurl.DecodeString(src)
	if err != nil {
		return nil, "", err
	}
	return du.Data, du.ContentType(), nil
}
