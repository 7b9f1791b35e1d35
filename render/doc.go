// SPDX-License-Identifier: EPL-2.0

// Package render is the offline effects renderer.
//
// A render reads the source at a playback rate (tempo and pitch together),
// applies an optional low-shelf bass boost, splits into a dry path and a
// convolution reverb, mixes them 0.7/0.3 and shapes the result with a gain
// envelope that fades in and out over 100ms. The graph is explicit: see
// Renderer.Build and Graph.
//
// Output length is floor(frames / PlaybackRate) at the source sample rate.
package render
