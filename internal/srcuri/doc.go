// Package srcuri turns git locators into BitBake SRC_URI entries.
//
// Remote URLs are classified into one of three shapes, tried in a fixed order
// (first match wins):
//
//  1. Authenticated: <scheme>://<user>@<host>/<path>
//  2. Bare:          <scheme>://<host>[/<path>]
//  3. SCP-like:      <user>@<host>:<path>
//
// Authenticated HTTP remotes are rewritten to the SSH transport with a fixed
// service account so that CI credentials never end up in a generated recipe.
// SCP-like remotes keep their user. Bare remotes keep their scheme as the
// fetch protocol.
//
// Dependencies are only turned into fetch directives when their locator uses
// the SCP-like private form; everything else is assumed to be resolvable by
// the build system without a recipe-level SRC_URI.
package srcuri
