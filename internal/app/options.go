package app

import (
	"github.com/vk/filetemp/internal/cachefile"
	"github.com/vk/filetemp/internal/filetype"
	"github.com/vk/filetemp/internal/registry"
	"github.com/vk/filetemp/internal/schema"
)

// General option names, applicable regardless of file type. The
// cache-control names live in cachefile, which must recognize them too.
const (
	pathOption       = "path"
	showOption       = "show"
	genExampleOption = "gen-example"
	logLevelOption   = "log-level"
	logFormatOption  = "log-format"
)

// defineOptions registers each file type's option set plus the general
// set. The definitions are static, so a rejected definition is a
// programmer error and panics.
func defineOptions(reg *registry.Registry) {
	for _, ft := range filetype.All() {
		gen, err := ft.Generator()
		if err != nil {
			panic(err)
		}
		for _, opt := range gen.Options() {
			mustDefine(reg.Define(ft, opt))
		}
	}

	mustDefine(reg.DefineGlobal(schema.New(pathOption)))
	mustDefine(reg.DefineGlobal(schema.New(showOption).AsFlag()))
	mustDefine(reg.DefineGlobal(schema.New(cachefile.SaveAsOption)))
	mustDefine(reg.DefineGlobal(schema.New(cachefile.UseOption)))
	mustDefine(reg.DefineGlobal(schema.New(genExampleOption).AsFlag()))
	mustDefine(reg.DefineGlobal(schema.New(logLevelOption).WithDefault("error")))
	mustDefine(reg.DefineGlobal(schema.New(logFormatOption).WithDefault("text")))
}

func mustDefine(err error) {
	if err != nil {
		panic(err)
	}
}
