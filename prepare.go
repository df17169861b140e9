package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

//**********************************************************
// cost-table asset fetching
//**********************************************************

// Downloads the precomputed hex cost table to dest if it is not present yet.
//
// Converting the raw friction raster into the hex table is a separate batch
// job, this only fetches its published output. The download goes to a
// temporary file first, dest only ever holds a completed table.
func FetchCostTable(url string, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		slog.Info("cost table already downloaded")
		return nil
	}
	slog.Info("downloading cost table from " + url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch cost table: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch cost table: status %v", resp.StatusCode)
	}

	part := dest + ".part"
	file, err := os.Create(part)
	if err != nil {
		return err
	}

	downloaded, err := _DownloadBody(resp.Body, file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(part)
		return err
	}
	if err := os.Rename(part, dest); err != nil {
		os.Remove(part)
		return err
	}
	slog.Info(fmt.Sprintf("cost table stored at %s (%v MB)", dest, downloaded/1024/1024))
	return nil
}

func _DownloadBody(body io.Reader, file *os.File) (int64, error) {
	var downloaded int64
	buffer := make([]byte, 4096)
	for {
		n, err := body.Read(buffer)
		if n > 0 {
			if _, werr := file.Write(buffer[:n]); werr != nil {
				return downloaded, werr
			}
			downloaded += int64(n)
			if downloaded%(50*1024*1024) < 4096 {
				slog.Info(fmt.Sprintf("downloaded %v MB", downloaded/1024/1024))
			}
		}
		if err == io.EOF {
			return downloaded, nil
		}
		if err != nil {
			return downloaded, fmt.Errorf("download interrupted: %w", err)
		}
	}
}
