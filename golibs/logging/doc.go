// Copyright 2023 The acquirecloud Authors
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
/*
Package logging contains an abstract logging interface and methods that may be used
with any logging engine. So as logging is extensively used in any application, it
may not be easy to switch from one logging solution to another. Another reason is
the unified logging approach, which helps to interpret the logs from different
applications in the same way.

Three backends are available via Setup(): the plain text std logger (default),
JSON lines via zerolog and JSON lines via zap.
*/
package logging
