// SPDX-License-Identifier: EPL-2.0

// Package utils holds the numeric helpers shared by the render and encode
// stages: 16-bit quantization, channel (de)interleaving and cubic
// interpolation.
//
// Quantization follows round(clamp(x*32767, -32768, 32767)). The clamp
// bounds are intentionally not symmetric with the scale factor; encoders fed
// by ToInt16 expect a full-scale sample of 1.0 to land on 32767.
package utils
