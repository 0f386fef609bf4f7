// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/solarisdb/splaymemo/golibs/errors"
	"github.com/solarisdb/splaymemo/golibs/logging"
)

type (
	// Enricher keeps a configuration structure of the type T and builds its value
	// layer by layer: a file, another enricher of the same type, the environment.
	//
	// The fields of T are addressed by their names or by the first element of their
	// json tag (FieldA int `json:"abc"` is addressed as FieldA or abc), case-insensitive.
	// Only the exported fields are updated. YAML files follow the json tags too.
	Enricher[T any] interface {
		// LoadFromFile loads the value from the YAML or JSON file chosen by the file
		// extension (.yaml or .json). The empty fileName is ignored.
		LoadFromFile(fileName string) error

		// LoadFromJSONFile unmarshals the file content as JSON. The empty fileName is ignored.
		LoadFromJSONFile(jsonFileName string) error

		// LoadFromYAMLFile unmarshals the file content as YAML. The empty fileName is ignored.
		LoadFromYAMLFile(yamlFileName string) error

		// ApplyOther deeply copies the non-zero fields of the other enricher value
		// over the current value.
		ApplyOther(other Enricher[T]) error

		// ApplyEnvVariables applies the environment variables, which names start from
		// prefix+sep. The rest of the name is the path to the field, the path elements
		// are separated by sep. For the structure
		//
		//	Bench struct {
		//		Repeat   int
		//		MaxDepth int `json:"maxDepth"`
		//	}
		//	Config struct {
		//		Bench *Bench
		//	}
		//
		// and the call ApplyEnvVariables("SPLAYMEMO", "_") the following variables make sense:
		//	- SPLAYMEMO_BENCH_REPEAT=5
		//	- SPLAYMEMO_BENCH_MAXDEPTH=1000
		//	- SPLAYMEMO_BENCH={"repeat": 5, "maxDepth": 1000}
		//
		// The values are JSON, strings and numbers may be provided as is. Nil pointers on
		// the path are created when the value is assigned. The variables are applied in
		// the names order, so SPLAYMEMO_BENCH goes before SPLAYMEMO_BENCH_REPEAT.
		ApplyEnvVariables(prefix, sep string) error

		// ApplyKeyValues applies the key-value pairs by the ApplyEnvVariables rules. The
		// keys matching no field are skipped, a value which cannot be assigned to its
		// field returns an error wrapping errors.ErrInvalid.
		ApplyKeyValues(prefix, sep string, keyValues map[string]string) error

		// Value returns the current value
		Value() T
	}

	enricher[T any] struct {
		log logging.Logger
		val T
	}
)

// NewEnricher returns the Enricher with the initial value val. T must be a struct.
func NewEnricher[T any](val T) Enricher[T] {
	tp := reflect.TypeOf(val)
	if tp.Kind() != reflect.Struct {
		panic(fmt.Sprintf("only structs are acceptable in the Enricher, but got the type %s", tp.Kind()))
	}
	return newEnricher(val)
}

func newEnricher[T any](val T) *enricher[T] {
	return &enricher[T]{val: val, log: logging.NewLogger("config.enricher." + reflect.TypeOf(val).Name())}
}

func (e *enricher[T]) LoadFromFile(fileName string) error {
	if fileName == "" {
		e.log.Infof("no file name is provided, nothing to load")
		return nil
	}
	fn := strings.ToLower(strings.TrimSpace(fileName))
	switch {
	case strings.HasSuffix(fn, ".yaml"):
		return e.LoadFromYAMLFile(fileName)
	case strings.HasSuffix(fn, ".json"):
		return e.LoadFromJSONFile(fileName)
	}
	return fmt.Errorf("cannot recognize file format %s, expecting .json or .yaml: %w", fileName, errors.ErrInvalid)
}

func (e *enricher[T]) LoadFromJSONFile(jsonFileName string) error {
	return e.load(jsonFileName, "JSON", json.Unmarshal)
}

func (e *enricher[T]) LoadFromYAMLFile(yamlFileName string) error {
	return e.load(yamlFileName, "YAML", func(buf []byte, v any) error { return yaml.Unmarshal(buf, v) })
}

func (e *enricher[T]) load(fileName, format string, unmarshalF func([]byte, any) error) error {
	if fileName == "" {
		return nil
	}
	e.log.Infof("reading %s data from %s", format, fileName)
	buf, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", fileName, err)
	}
	if err = unmarshalF(buf, &e.val); err != nil {
		return fmt.Errorf("could not unmarshal %s file %s: %w", format, fileName, err)
	}
	return nil
}

func (e *enricher[T]) ApplyOther(other Enricher[T]) error {
	oe, ok := other.(*enricher[T])
	if !ok {
		return fmt.Errorf("unsupported Enricher implementation %T: %w", other, errors.ErrInvalid)
	}
	applyNonZero(reflect.ValueOf(&oe.val).Elem(), reflect.ValueOf(&e.val).Elem())
	return nil
}

func (e *enricher[T]) ApplyEnvVariables(prefix, sep string) error {
	e.log.Infof("apply environment variables with the prefix %s", prefix)
	env := make(map[string]string)
	for _, v := range os.Environ() {
		name, val, ok := strings.Cut(v, "=")
		if !ok {
			e.log.Warnf("the environment variable %s is not valid, skip it", v)
			continue
		}
		env[name] = val
	}
	return e.ApplyKeyValues(prefix, sep, env)
}

func (e *enricher[T]) ApplyKeyValues(prefix, sep string, keyValues map[string]string) error {
	sep = strings.ToUpper(sep)
	pfx := ""
	if prefix != "" {
		pfx = strings.ToUpper(prefix) + sep
	}
	keys := make([]string, 0, len(keyValues))
	for k := range keyValues {
		if strings.HasPrefix(strings.ToUpper(k), pfx) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		path := strings.Split(strings.ToUpper(k)[len(pfx):], sep)
		ok, err := assignPath(reflect.ValueOf(&e.val).Elem(), path, keyValues[k])
		if err != nil {
			return fmt.Errorf("could not apply %s: %w", k, err)
		}
		e.log.Debugf("applying variable %s: %t", k, ok)
	}
	return nil
}

func (e *enricher[T]) Value() T {
	return e.val
}

// applyNonZero copies the non-zero values from src to dst recursively. The nil
// pointers of dst are allocated when src has a value for them.
func applyNonZero(src, dst reflect.Value) {
	if src.IsZero() {
		return
	}
	switch src.Kind() {
	case reflect.Ptr:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		applyNonZero(src.Elem(), dst.Elem())
	case reflect.Struct:
		for i := 0; i < src.NumField(); i++ {
			if src.Type().Field(i).IsExported() {
				applyNonZero(src.Field(i), dst.Field(i))
			}
		}
	default:
		dst.Set(src)
	}
}

// assignPath sets the field of the struct value v addressed by the upper-cased path
// to the value s. It returns false if no field matches the path. The structs on the
// path are modified only when the value is assigned.
func assignPath(v reflect.Value, path []string, s string) (bool, error) {
	if v.Kind() == reflect.Ptr {
		if v.Type().Elem().Kind() != reflect.Struct {
			return false, nil
		}
		nv := reflect.New(v.Type().Elem())
		if !v.IsNil() {
			nv.Elem().Set(v.Elem())
		}
		ok, err := assignPath(nv.Elem(), path, s)
		if ok {
			v.Set(nv)
		}
		return ok, err
	}
	if v.Kind() != reflect.Struct || len(path) == 0 || path[0] == "" {
		return false, nil
	}
	f, ok := fieldByName(v, path[0])
	if !ok {
		return false, nil
	}
	if len(path) > 1 {
		// the copy is assigned back only if the path is found
		cp := reflect.New(f.Type()).Elem()
		cp.Set(f)
		ok, err := assignPath(cp, path[1:], s)
		if ok {
			f.Set(cp)
		}
		return ok, err
	}
	if err := setFieldValueByString(f, s); err != nil {
		return false, fmt.Errorf("invalid value %q for the field %s: %v: %w", s, path[0], err, errors.ErrInvalid)
	}
	return true, nil
}

// fieldByName returns the exported field of the struct value v by its upper-cased
// name or the json alias
func fieldByName(v reflect.Value, name string) (reflect.Value, bool) {
	tp := v.Type()
	for i := 0; i < tp.NumField(); i++ {
		sf := tp.Field(i)
		if !sf.IsExported() {
			continue
		}
		if strings.ToUpper(sf.Name) == name || getAlias(sf.Tag) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// setFieldValueByString assigns the JSON value s to the field. The strings may be
// provided without quotes. The empty s does nothing.
//
//	int: 1234
//	string: la la la
//	[]string: ["aaa", "bbbb"]
func setFieldValueByString(field reflect.Value, s string) error {
	if len(s) == 0 {
		return nil
	}
	if isStringUnderlying(field.Type()) && !isQuoted(s) {
		s = strconv.Quote(s)
	}
	obj := reflect.New(field.Type())
	if err := json.Unmarshal([]byte(s), obj.Interface()); err != nil {
		return err
	}
	field.Set(obj.Elem())
	return nil
}

func isQuoted(s string) bool {
	s = strings.Trim(s, " ")
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

func isStringUnderlying(tp reflect.Type) bool {
	if tp.Kind() == reflect.Ptr {
		return isStringUnderlying(tp.Elem())
	}
	return tp.Kind() == reflect.String
}

// getAlias returns the upper-cased name of the json tag or the empty string
func getAlias(tag reflect.StructTag) string {
	name, _, _ := strings.Cut(tag.Get("json"), ",")
	return strings.ToUpper(name)
}
