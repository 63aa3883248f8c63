// Package edf reads European Data Format (EDF/EDF+) recordings.
//
// The format is a fixed-width ASCII header (256 bytes, plus 256 per signal)
// followed by data records of little-endian 16-bit samples, one block per
// signal per record. Digital values are mapped to physical units via the
// per-signal calibration in the header.
package edf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SignalHeader describes one signal of an EDF file.
type SignalHeader struct {
	Label            string
	Transducer       string
	PhysicalDim      string
	PhysMin          float64
	PhysMax          float64
	DigMin           float64
	DigMax           float64
	Prefilter        string
	SamplesPerRecord int
}

// SampleRate returns the signal's sampling rate in Hz given the record
// duration from the file header.
func (s SignalHeader) sampleRate(recordDuration float64) float64 {
	if recordDuration <= 0 {
		return 0
	}
	return float64(s.SamplesPerRecord) / recordDuration
}

// Header is the parsed EDF file header.
type Header struct {
	Version        string
	Patient        string
	Recording      string
	StartDate      string
	StartTime      string
	HeaderBytes    int
	Reserved       string
	NumRecords     int
	RecordDuration float64
	Signals        []SignalHeader
}

// SampleRate returns the sampling rate of signal i in Hz.
func (h *Header) SampleRate(i int) float64 {
	return h.Signals[i].sampleRate(h.RecordDuration)
}

// File is a fully read EDF file: the header and the physical sample values
// per signal. Signals flagged as annotations keep their raw digital values.
type File struct {
	Header Header
	Data   [][]float64
}

// ReadFile reads and parses the EDF file at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	file, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return file, nil
}

// Read parses an EDF stream.
func Read(r io.Reader) (*File, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	data, err := readRecords(r, hdr)
	if err != nil {
		return nil, err
	}
	return &File{Header: *hdr, Data: data}, nil
}

// ReadHeader parses only the fixed and per-signal header blocks.
func ReadHeader(r io.Reader) (*Header, error) {
	fixed := make([]byte, 256)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return nil, fmt.Errorf("edf header: %w", err)
	}

	field := func(off, n int) string {
		return strings.TrimSpace(string(fixed[off : off+n]))
	}

	hdr := &Header{
		Version:   field(0, 8),
		Patient:   field(8, 80),
		Recording: field(88, 80),
		StartDate: field(168, 8),
		StartTime: field(176, 8),
		Reserved:  field(192, 44),
	}

	var err error
	if hdr.HeaderBytes, err = atoi(field(184, 8)); err != nil {
		return nil, fmt.Errorf("edf header bytes: %w", err)
	}
	if hdr.NumRecords, err = atoi(field(236, 8)); err != nil {
		return nil, fmt.Errorf("edf record count: %w", err)
	}
	if hdr.RecordDuration, err = atof(field(244, 8)); err != nil {
		return nil, fmt.Errorf("edf record duration: %w", err)
	}
	numSignals, err := atoi(field(252, 4))
	if err != nil {
		return nil, fmt.Errorf("edf signal count: %w", err)
	}
	if numSignals <= 0 {
		return nil, fmt.Errorf("edf: no signals")
	}
	if want := 256 * (numSignals + 1); hdr.HeaderBytes != want {
		return nil, fmt.Errorf("edf: header size %d does not match %d signals", hdr.HeaderBytes, numSignals)
	}

	block := make([]byte, 256*numSignals)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, fmt.Errorf("edf signal headers: %w", err)
	}

	hdr.Signals = make([]SignalHeader, numSignals)
	off := 0
	readColumn := func(width int, set func(i int, v string)) {
		for i := 0; i < numSignals; i++ {
			set(i, strings.TrimSpace(string(block[off:off+width])))
			off += width
		}
	}

	var parseErr error
	setFloat := func(dst func(i int) *float64, name string) func(int, string) {
		return func(i int, v string) {
			f, err := atof(v)
			if err != nil && parseErr == nil {
				parseErr = fmt.Errorf("edf signal %d %s: %w", i, name, err)
			}
			*dst(i) = f
		}
	}

	readColumn(16, func(i int, v string) { hdr.Signals[i].Label = v })
	readColumn(80, func(i int, v string) { hdr.Signals[i].Transducer = v })
	readColumn(8, func(i int, v string) { hdr.Signals[i].PhysicalDim = v })
	readColumn(8, setFloat(func(i int) *float64 { return &hdr.Signals[i].PhysMin }, "physical min"))
	readColumn(8, setFloat(func(i int) *float64 { return &hdr.Signals[i].PhysMax }, "physical max"))
	readColumn(8, setFloat(func(i int) *float64 { return &hdr.Signals[i].DigMin }, "digital min"))
	readColumn(8, setFloat(func(i int) *float64 { return &hdr.Signals[i].DigMax }, "digital max"))
	readColumn(80, func(i int, v string) { hdr.Signals[i].Prefilter = v })
	readColumn(8, func(i int, v string) {
		n, err := atoi(v)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("edf signal %d samples per record: %w", i, err)
		}
		hdr.Signals[i].SamplesPerRecord = n
	})
	readColumn(32, func(i int, v string) {}) // per-signal reserved

	if parseErr != nil {
		return nil, parseErr
	}
	for i, s := range hdr.Signals {
		if s.SamplesPerRecord <= 0 {
			return nil, fmt.Errorf("edf signal %d (%s): invalid samples per record", i, s.Label)
		}
		if !isAnnotation(s.Label) && s.DigMax == s.DigMin {
			return nil, fmt.Errorf("edf signal %d (%s): digital min equals digital max", i, s.Label)
		}
	}
	return hdr, nil
}

func readRecords(r io.Reader, hdr *Header) ([][]float64, error) {
	ns := len(hdr.Signals)
	data := make([][]float64, ns)
	gains := make([]float64, ns)
	for i, s := range hdr.Signals {
		if isAnnotation(s.Label) {
			gains[i] = 0
		} else {
			gains[i] = (s.PhysMax - s.PhysMin) / (s.DigMax - s.DigMin)
		}
		if hdr.NumRecords > 0 {
			data[i] = make([]float64, 0, hdr.NumRecords*s.SamplesPerRecord)
		}
	}

	recordLen := 0
	for _, s := range hdr.Signals {
		recordLen += 2 * s.SamplesPerRecord
	}
	buf := make([]byte, recordLen)

	// A record count of -1 means "unknown"; read records until EOF.
	for rec := 0; hdr.NumRecords < 0 || rec < hdr.NumRecords; rec++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			if hdr.NumRecords < 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("edf data record %d: %w", rec, err)
		}
		off := 0
		for i, s := range hdr.Signals {
			for j := 0; j < s.SamplesPerRecord; j++ {
				d := int16(binary.LittleEndian.Uint16(buf[off:]))
				off += 2
				if gains[i] == 0 {
					data[i] = append(data[i], float64(d))
					continue
				}
				data[i] = append(data[i], s.PhysMin+gains[i]*(float64(d)-s.DigMin))
			}
		}
	}
	return data, nil
}

func isAnnotation(label string) bool {
	return strings.EqualFold(label, "EDF Annotations")
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty numeric field")
	}
	return strconv.Atoi(s)
}

func atof(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty numeric field")
	}
	return strconv.ParseFloat(s, 64)
}
