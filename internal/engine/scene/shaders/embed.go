// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// GroundVertexShader is the vertex shader for the meadow plane.
//
//go:embed ground.vert
var GroundVertexShader string

// GroundFragmentShader is the fragment shader for the meadow plane.
//
//go:embed ground.frag
var GroundFragmentShader string

// SkyVertexShader is the vertex shader for the sky dome.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the sky dome.
//
//go:embed sky.frag
var SkyFragmentShader string

// FieldVertexShader is the instanced vertex shader for the flower field.
// Wind displacement happens here.
//
//go:embed field.vert
var FieldVertexShader string

// FieldFragmentShader is the fragment shader for the flower field.
//
//go:embed field.frag
var FieldFragmentShader string

// RoseVertexShader is the vertex shader for the centerpiece rose.
//
//go:embed rose.vert
var RoseVertexShader string

// RoseFragmentShader is the fragment shader for the centerpiece rose.
//
//go:embed rose.frag
var RoseFragmentShader string

// HeartVertexShader is the instanced vertex shader for falling hearts.
//
//go:embed heart.vert
var HeartVertexShader string

// HeartFragmentShader is the fragment shader for falling hearts.
//
//go:embed heart.frag
var HeartFragmentShader string
