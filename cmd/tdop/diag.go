package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fatih/color"
)

var errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()

// printError writes err to w. Error lists, such as those returned by the
// EBNF checker, are written one entry per line.
func printError(w io.Writer, err error) {
	for _, e := range flattenErrors(err) {
		fmt.Fprintln(w, errorPrefix("error:"), e)
	}
}

func flattenErrors(err error) []error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() != reflect.Slice || v.Len() == 0 {
			continue
		}
		var errs []error
		for i := 0; i < v.Len(); i++ {
			if item, ok := v.Index(i).Interface().(error); ok {
				errs = append(errs, item)
			}
		}
		if len(errs) > 0 {
			return errs
		}
	}
	return []error{err}
}
