// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when the service set is
// missing or incomplete. Routes would otherwise dereference nil services on
// the first request, so this is treated as a fatal misconfiguration at
// startup.
var errNoServicesProvided = errors.New("no services provided to handlers")
