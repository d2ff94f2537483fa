package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// UnknownKeyError reports a key missing from Default along with the closest known one.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	field, ok := Default[k]
	if !ok {
		return Field{}, &UnknownKeyError{Key: k, Closest: closest(k)}
	}

	return field, nil
}

func closest(k string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Keys returns the sorted keys matching the fuzzy pattern; an empty pattern matches all.
func Keys(pattern string) []string {
	keys := lo.Keys(Default)
	if pattern != "" {
		keys = fuzzy.FindFold(pattern, keys)
	}

	sort.Strings(keys)
	return keys
}

// Parse converts raw command line values into the type of the field under k and validates the result.
func Parse(k string, raw []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: no value given", k)
	}

	var v any
	switch field.Value.(type) {
	case string:
		v = raw[0]
	case int:
		v, err = strconv.Atoi(raw[0])
	case float64:
		v, err = strconv.ParseFloat(raw[0], 64)
	case bool:
		v, err = strconv.ParseBool(raw[0])
	case []string:
		v = lo.FlatMap(raw, func(r string, _ int) []string {
			return lo.Compact(lo.Map(strings.Split(r, ","), func(s string, _ int) string {
				return strings.TrimSpace(s)
			}))
		})
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", k, field.TypeName())
	}

	if err != nil {
		return nil, fmt.Errorf("%s: expected %s, got %q", k, field.TypeName(), raw[0])
	}

	if err := Validate(k, v); err != nil {
		return nil, err
	}

	return v, nil
}

// Save persists the current values, creating the config file when missing.
func Save() error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.SafeWriteConfig()
	}

	return err
}
