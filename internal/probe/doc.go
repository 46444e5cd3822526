// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package probe collects the audit metadata attached to every submitted
// entry: the author, the public IP address of the client and the browser
// and operating system derived from the client user agent.
//
// Nothing in this package fails. Whatever cannot be determined is reported
// as "Unknown".
package probe
