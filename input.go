package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// SessionEnv is the environment variable holding the adventofcode.com
// session cookie.
var SessionEnv = fmt.Sprintf("AOC%d_SESSION", Year)

// InputSource fetches puzzle inputs from adventofcode.com and caches them on
// disk, so each input is downloaded at most once.
type InputSource struct {
	Client   *http.Client
	BaseURL  string // e.g. "https://adventofcode.com"
	Year     int
	Session  string // empty means fetching fails
	CacheDir string // empty disables the cache
	Log      logrus.FieldLogger
}

// NewInputSource returns an InputSource for year using the session from
// SessionEnv and the user cache directory.
func NewInputSource(year int, log logrus.FieldLogger) *InputSource {
	s := &InputSource{
		Client:  http.DefaultClient,
		BaseURL: "https://adventofcode.com",
		Year:    year,
		Session: strings.TrimSpace(os.Getenv(SessionEnv)),
		Log:     log,
	}
	if dir, err := os.UserCacheDir(); err == nil {
		s.CacheDir = filepath.Join(dir, fmt.Sprintf("aoc%d", year))
	} else {
		s.logger().WithError(err).Warn("no user cache directory; inputs will not be cached")
	}
	return s
}

func (s *InputSource) cachePath(day int) string {
	return filepath.Join(s.CacheDir, strconv.Itoa(day))
}

// Get returns the input for day from the cache, fetching and caching it if
// needed.
func (s *InputSource) Get(ctx context.Context, day int) (string, error) {
	if s.CacheDir != "" {
		if b, err := os.ReadFile(s.cachePath(day)); err == nil {
			return string(b), nil
		}
	}
	body, err := s.fetch(ctx, day)
	if err != nil {
		return "", err
	}
	s.putCache(day, body)
	return string(body), nil
}

func (s *InputSource) fetch(ctx context.Context, day int) ([]byte, error) {
	if s.Session == "" {
		return nil, fmt.Errorf("environment variable %s is unset; set it to the session cookie from adventofcode.com", SessionEnv)
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", s.BaseURL, s.Year, day)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s.Session})
	s.logger().WithField("url", url).Info("fetching input")
	c := s.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

func (s *InputSource) putCache(day int, body []byte) {
	if s.CacheDir == "" {
		return
	}
	log := s.logger().WithField("dir", s.CacheDir)
	if err := os.MkdirAll(s.CacheDir, 0700); err != nil {
		log.WithError(err).Warn("creating cache dir")
		return
	}
	if err := os.WriteFile(s.cachePath(day), body, 0600); err != nil {
		log.WithError(err).Warn("writing cache file")
	}
}

func (s *InputSource) logger() logrus.FieldLogger {
	return Config{Log: s.Log}.Logger()
}

// FileInputs serves every day's input from one file.
type FileInputs string

func (f FileInputs) Get(_ context.Context, _ int) (string, error) {
	b, err := os.ReadFile(string(f))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("input file %s does not exist", string(f))
	}
	return string(b), err
}
