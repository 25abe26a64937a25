package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Map    bool
	Cond   bool
}

var d *debug

func init() {
	d = load()
}

func load() *debug {
	all := boolEnv("KVDEBUG")
	return &debug{
		Parse:  all || boolEnv("KVDEBUG_PARSE"),
		Encode: all || boolEnv("KVDEBUG_ENCODE"),
		Map:    all || boolEnv("KVDEBUG_MAP"),
		Cond:   all || boolEnv("KVDEBUG_COND"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Map() bool {
	return d.Map
}
func Cond() bool {
	return d.Cond
}
