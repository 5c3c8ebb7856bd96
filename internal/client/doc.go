// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the lifecycle of the terminal UI that plays quizzes against the
// go-quiz server.
package client
