package util

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

//*******************************************
// csv io
//*******************************************

// Iterates the rows of a csv file as values of T.
//
// Columns are matched to struct fields by the "csv" tag, unmatched fields are
// left at their zero value. Files ending in ".gz" are read through gzip.
func ReadCSVFromFile[T any](filename string, delimiter rune) (func(yield func(T) bool), error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	var stream io.ReadCloser = file
	if strings.HasSuffix(filename, ".gz") {
		stream, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("corrupt gzip stream %s: %w", filename, err)
		}
	}

	reader := csv.NewReader(stream)
	reader.Comma = delimiter
	header, err := reader.Read()
	if err != nil {
		stream.Close()
		file.Close()
		return nil, fmt.Errorf("missing csv header in %s: %w", filename, err)
	}
	name_row_mapping := NewDict[string, int](10)
	for i, name := range header {
		name_row_mapping[name] = i
	}

	var val T
	typ := reflect.TypeOf(val)
	fields := _MapCSVFields(typ, func(tag string) (int, bool) {
		row, ok := name_row_mapping[tag]
		return row, ok
	})

	return func(yield func(T) bool) {
		defer file.Close()
		defer stream.Close()
		var parse_err *csv.ParseError
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if errors.As(err, &parse_err) {
				// malformed records are skipped, the stream is still usable
				continue
			} else if err != nil {
				// stream errors (truncated gzip, io failures) never recover
				break
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				index := field.A
				row := field.B
				kind := field.C
				value := record[row]
				if value == "" {
					continue
				}
				f := t.Field(index)
				switch kind {
				case reflect.Bool:
					num, _ := strconv.ParseBool(value)
					f.SetBool(num)
				case reflect.Int:
					num, _ := strconv.ParseInt(value, 10, 64)
					f.SetInt(num)
				case reflect.Uint:
					num, _ := strconv.ParseUint(value, 10, 64)
					f.SetUint(num)
				case reflect.Float64:
					num, _ := strconv.ParseFloat(value, 64)
					f.SetFloat(num)
				case reflect.String:
					f.SetString(value)
				}
			}
			value := t.Interface().(T)
			if !yield(value) {
				break
			}
		}
	}, nil
}

// Writes rows of T to a csv file, one column per "csv"-tagged field.
//
// Files ending in ".gz" are written through gzip. Existing files are
// overwritten without any atomicity guarantee.
func WriteCSVToFile[T any](rows []T, filename string, delimiter rune) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	var stream io.Writer = file
	var zipper *gzip.Writer
	if strings.HasSuffix(filename, ".gz") {
		zipper = gzip.NewWriter(file)
		stream = zipper
	}

	var val T
	typ := reflect.TypeOf(val)
	header := NewList[string](typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("csv")
		if tag == "" {
			continue
		}
		header.Add(tag)
	}
	fields := _MapCSVFields(typ, func(tag string) (int, bool) {
		return 0, true
	})

	writer := csv.NewWriter(stream)
	writer.Comma = delimiter
	if err := writer.Write(header); err != nil {
		return err
	}
	record := make([]string, 0, header.Length())
	for _, row := range rows {
		record = record[:0]
		t := reflect.ValueOf(row)
		for _, field := range fields {
			f := t.Field(field.A)
			switch field.C {
			case reflect.Bool:
				record = append(record, strconv.FormatBool(f.Bool()))
			case reflect.Int:
				record = append(record, strconv.FormatInt(f.Int(), 10))
			case reflect.Uint:
				record = append(record, strconv.FormatUint(f.Uint(), 10))
			case reflect.Float64:
				record = append(record, strconv.FormatFloat(f.Float(), 'f', -1, 64))
			case reflect.String:
				record = append(record, f.String())
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	if zipper != nil {
		if err := zipper.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Maps "csv"-tagged struct fields to (field-index, column, kind) triples.
func _MapCSVFields(typ reflect.Type, column func(tag string) (int, bool)) List[Triple[int, int, reflect.Kind]] {
	num_field := typ.NumField()
	fields := NewList[Triple[int, int, reflect.Kind]](num_field)
	for i := 0; i < num_field; i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" {
			continue
		}
		row, ok := column(tag)
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Bool:
			fields.Add(MakeTriple(i, row, reflect.Bool))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(MakeTriple(i, row, reflect.Int))
		case reflect.Float32, reflect.Float64:
			fields.Add(MakeTriple(i, row, reflect.Float64))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(MakeTriple(i, row, reflect.Uint))
		case reflect.String:
			fields.Add(MakeTriple(i, row, reflect.String))
		}
	}
	return fields
}
