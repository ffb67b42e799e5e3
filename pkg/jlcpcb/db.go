package jlcpcb

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Download source for the database snapshot, published in numbered zip
// chunks alongside a chunk-count file.
const (
	DownloadURLBase = "https://bouni.github.io/kicad-jlcpcb-tools/"
	chunkCountFile  = "chunk_num_fts5.txt"
	chunkFileStub   = "parts-fts5.db.zip."
	dbFileName      = "parts-fts5.db"
)

// FallbackDBDir holds a downloaded database when the KiCad plugin copy
// is not present.
const FallbackDBDir = "/tmp/jlcpcb-parts"

// PrimaryDBPath returns the database location used by the
// kicad-jlcpcb-tools plugin.
func PrimaryDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home,
		".local", "share", "kicad", "7.0", "scripting", "plugins",
		"kicad-jlcpcb-tools", "jlcpcb", dbFileName)
}

// FallbackDBPath returns the download location of the database.
func FallbackDBPath() string {
	return filepath.Join(FallbackDBDir, dbFileName)
}

// FindDatabase returns the first existing, non-empty database from the
// given candidate paths, or the primary-then-fallback locations when
// none are given.
func FindDatabase(paths ...string) (string, bool) {
	if len(paths) == 0 {
		paths = []string{PrimaryDBPath(), FallbackDBPath()}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() && info.Size() > 0 {
			return path, true
		}
	}

	return "", false
}

// Downloader fetches the chunked database snapshot and reassembles it
// on disk.
type Downloader struct {
	BaseURL  string    // DownloadURLBase when empty
	Dir      string    // destination directory, FallbackDBDir when empty
	Progress io.Writer // progress output, os.Stderr when nil
}

// NewDownloader creates a downloader with the standard source and
// destination.
func NewDownloader() *Downloader {
	return &Downloader{}
}

// DownloadDatabase fetches the database snapshot into FallbackDBDir
// and returns the database path.
func DownloadDatabase(ctx context.Context) (string, error) {
	return NewDownloader().Download(ctx)
}

// Download fetches the chunk count, downloads and concatenates the
// numbered chunks, extracts the archive, and removes it. Progress is
// reported per chunk.
func (d *Downloader) Download(ctx context.Context) (string, error) {
	baseURL := d.BaseURL
	if baseURL == "" {
		baseURL = DownloadURLBase
	}
	destDir := d.Dir
	if destDir == "" {
		destDir = FallbackDBDir
	}
	progress := d.Progress
	if progress == nil {
		progress = os.Stderr
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	chunkCount, err := fetchChunkCount(ctx, baseURL)
	if err != nil {
		return "", err
	}

	zipPath := filepath.Join(destDir, "parts-fts5.db.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", zipPath, err)
	}

	bar := progressbar.NewOptions(chunkCount,
		progressbar.OptionSetDescription("Downloading parts database"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(progress) }),
	)

	for i := 1; i <= chunkCount; i++ {
		url := fmt.Sprintf("%s%s%03d", baseURL, chunkFileStub, i)
		if err := fetchChunk(ctx, url, zipFile); err != nil {
			zipFile.Close()
			os.Remove(zipPath)
			return "", err
		}
		bar.Add(1)
	}

	if err := zipFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", zipPath, err)
	}
	defer os.Remove(zipPath)

	if err := extractZip(zipPath, destDir); err != nil {
		return "", err
	}

	dbPath := filepath.Join(destDir, dbFileName)
	if _, ok := FindDatabase(dbPath); !ok {
		return "", fmt.Errorf("downloaded archive did not contain %s", dbFileName)
	}

	return dbPath, nil
}

func fetchChunkCount(ctx context.Context, baseURL string) (int, error) {
	body, err := httpGet(ctx, baseURL+chunkCountFile)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return 0, fmt.Errorf("failed to read chunk count: %w", err)
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid chunk count %q: %w", strings.TrimSpace(string(data)), err)
	}

	return count, nil
}

func fetchChunk(ctx context.Context, url string, dst io.Writer) error {
	body, err := httpGet(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	return nil
}

func httpGet(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}

func extractZip(zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", zipPath, err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		// Flatten: the archive holds a single database file
		dest := filepath.Join(destDir, filepath.Base(file.Name))

		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}

		out, err := os.Create(dest)
		if err != nil {
			src.Close()
			return fmt.Errorf("failed to create %s: %w", dest, err)
		}

		_, err = io.Copy(out, src)
		src.Close()
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
	}

	return nil
}
