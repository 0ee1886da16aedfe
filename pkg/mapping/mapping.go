/*
Copyright © 2022 - 2023 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package mapping reads the operator maintained machine table. One row
// per physical machine, whitespace separated:
//
//	<serial> <controllerIP> <managementIP>
//
// No header, no comments, no escaping. The table is the only source of
// truth for which addresses a machine gets and is re-read on every run.
package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	v1 "github.com/baremetal-ops/netprov/pkg/types/v1"
)

var (
	// ErrSerialNotFound means the whole table was scanned and no row
	// carries the requested serial in its first field.
	ErrSerialNotFound = errors.New("serial number not found in mapping file")

	// ErrMalformedRow means the matching row does not carry both
	// address fields. Callers treat it the same as not found.
	ErrMalformedRow = errors.New("malformed mapping row")
)

// Row is one machine entry of the mapping table.
type Row struct {
	Serial       string
	ControllerIP string
	ManagementIP string
}

// Lookup scans the mapping file at path in file order and returns the
// first row whose serial field equals serial. Duplicate serials later
// in the file are ignored, first match wins. The addresses are returned
// verbatim, no syntax validation happens here.
func Lookup(fs v1.FS, path string, serial string) (Row, error) {
	file, err := fs.Open(path)
	if err != nil {
		return Row{}, fmt.Errorf("opening mapping file '%s': %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := splitRow(scanner.Text())
		if len(fields) == 0 || fields[0] != serial {
			continue
		}
		if len(fields) < 3 {
			return Row{}, fmt.Errorf("row for serial '%s': %w", serial, ErrMalformedRow)
		}
		return Row{Serial: fields[0], ControllerIP: fields[1], ManagementIP: fields[2]}, nil
	}
	if err := scanner.Err(); err != nil {
		return Row{}, fmt.Errorf("reading mapping file '%s': %w", path, err)
	}
	return Row{}, fmt.Errorf("serial '%s' in '%s': %w", serial, path, ErrSerialNotFound)
}

// splitRow tolerates runs of whitespace between fields even though the
// authored format uses single spaces.
func splitRow(line string) []string {
	return strings.Fields(line)
}

