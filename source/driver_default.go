// Package source selects the default JSON driver for the module.
package source

import (
	hnshape "github.com/hnshape/hnshape"
	drvgojson "github.com/hnshape/hnshape/source/gojson"
)

// init in a separate package to avoid an import cycle in root. This sets
// go-json as the default driver.
func init() { hnshape.SetJSONDriver(drvgojson.Driver()) }
