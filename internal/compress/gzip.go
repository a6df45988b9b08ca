package compress

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
)

type gzipBody struct {
	*gzip.Reader
	raw io.ReadCloser
}

func (b gzipBody) Close() error {
	b.Reader.Close()
	return b.raw.Close()
}

// UngzipRequest decompresses request bodies sent with Content-Encoding: gzip.
// Each request gets its own reader, so the middleware is safe for concurrent use.
func UngzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		reader, err := gzip.NewReader(r.Body)
		if err != nil {
			logger.WithError(err).Warn("Could not read gzipped request body")
			http.Error(w, "malformed gzip body", http.StatusBadRequest)
			return
		}
		r.Body = gzipBody{Reader: reader, raw: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		defer r.Body.Close()

		next.ServeHTTP(w, r)
	})
}
