package extract

import "errors"

// errScriptingForbidden marks URLs whose scheme the browser refuses to
// inject scripts into.
var errScriptingForbidden = errors.New("scheme does not permit script injection")
