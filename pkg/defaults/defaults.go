// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "os"

// Server defaults for the demo server command.
const (
	// ServerAddr is the default bind address.
	ServerAddr = "127.0.0.1"

	// ServerPort is the default listen port.
	ServerPort uint16 = 8080
)

// Manual page defaults for the documentation generator.
const (
	// ManDir is the default output directory for generated pages,
	// relative to the working directory of the generator.
	ManDir = "man"

	// ManSection is the manual section for user commands.
	ManSection = "1"

	// ManFileMode is the permission used for generated pages.
	ManFileMode os.FileMode = 0o644

	// ManDirMode is the permission used for the output directory.
	ManDirMode os.FileMode = 0o755
)

// Environment variables read by both binaries.
const (
	// EnvLogLevel overrides the log level.
	EnvLogLevel = "LOG_LEVEL"

	// EnvManDir overrides the generator output directory.
	EnvManDir = "MYAPP_MAN_DIR"

	// EnvSourceDateEpoch pins the date printed in generated pages
	// (https://reproducible-builds.org/specs/source-date-epoch/).
	EnvSourceDateEpoch = "SOURCE_DATE_EPOCH"
)
