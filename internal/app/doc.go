// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root of the reader.
//
// It is the only package that knows both the shared API client and the
// screens. [SharedCapabilities] reads the operations off the client, and
// [NewApp] assigns them to the screen slots. Tests build an App from any
// [Capabilities] value, including a partially empty one.
package app
