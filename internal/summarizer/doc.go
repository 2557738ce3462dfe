// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package summarizer turns a claim and the text of its notes into a
// four-part [models.Summary].
//
// When a hosted model is configured the summary is requested from a
// [Provider] (Amazon Bedrock or an OpenAI-compatible endpoint) with a fixed
// instruction prompt, and the reply must be a strict JSON object carrying the
// four summary keys. Every provider failure, timeout or malformed reply is
// logged at warn level and replaced by a templated summary tagged
// "local-fallback", so summarization itself never fails.
package summarizer
