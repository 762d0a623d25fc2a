//
// Copyright 2025 apstndb
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// ReadableFileParser accepts a token naming an existing regular file that the
// current process can open for reading. The token is returned unchanged.
// The file is opened and closed again; its content is never read.
type ReadableFileParser struct {
	BaseParser[string]
	fs afero.Fs
}

// NewReadableFileParser creates a readable-file parser probing fs.
// A nil fs means the operating system filesystem.
func NewReadableFileParser(fs afero.Fs) *ReadableFileParser {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	p := &ReadableFileParser{fs: fs}
	p.BaseParser = BaseParser[string]{
		ParseFunc: p.probe,
	}
	return p
}

func (p *ReadableFileParser) probe(path string) (string, error) {
	if path == "" {
		return "", &FileAccessError{Path: path, Err: errors.New("empty path")}
	}

	// Stat follows symlinks, so a link to a regular file is accepted.
	fi, err := p.fs.Stat(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}

	if err := checkRegular(fi); err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}

	f, err := p.fs.Open(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}

	return path, nil
}

func checkRegular(fi os.FileInfo) error {
	mode := fi.Mode()
	if mode.IsRegular() {
		return nil
	}

	switch {
	case mode.IsDir():
		return errors.New("is a directory")
	case mode&os.ModeCharDevice != 0:
		return errors.New("is a character device")
	case mode&os.ModeDevice != 0:
		return errors.New("is a device file")
	case mode&os.ModeNamedPipe != 0:
		return errors.New("is a named pipe")
	case mode&os.ModeSocket != 0:
		return errors.New("is a socket")
	default:
		return fmt.Errorf("is a special file (mode: %v)", mode)
	}
}
