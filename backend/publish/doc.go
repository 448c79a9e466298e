/*
Package publish uploads generated packages to S3-compatible object storage.

Every file of the package folder {output_dir}/{prefix} is stored under the key
{key_prefix}/{prefix}/{file} of the configured bucket. The bucket is created
on first use if it does not exist.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package publish

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.publish'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.publish")
}
