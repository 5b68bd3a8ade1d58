// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider adapts the external asymmetric encryption capability
// protecting the secret store at rest. The store hands it opaque byte
// payloads; the provider seals them for the user's pre-existing keypair.
package provider
