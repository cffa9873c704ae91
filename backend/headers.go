package codegen

import (
	_ "embed"
	"strings"
)

// Banner is the first line of every generated file unless disabled.
const Banner = "// ---- Loto → JavaScript ----"

//go:embed runtime.js
var runtimeJS string

// RuntimeHelpers returns the helper functions every output starts with.
func RuntimeHelpers() string {
	return runtimeJS
}

func headers(cg *Codegen) {
	if cg.Options.Banner {
		cg.ln(0, Banner)
		cg.blank()
	}
	for _, line := range strings.Split(strings.TrimRight(runtimeJS, "\n"), "\n") {
		cg.ln(0, "%s", line)
	}
	cg.blank()
}

// reactImport emits the framework import once, before any component.
func reactImport(cg *Codegen) {
	switch {
	case cg.anyState:
		cg.ln(0, "import React, { useState } from 'react';")
	case cg.anyComponent:
		cg.ln(0, "import React from 'react';")
	default:
		return
	}
	cg.blank()
}
