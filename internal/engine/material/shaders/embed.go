// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader is the vertex shader for lit solid meshes.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader is the fragment shader for lit solid meshes.
//
//go:embed phong.frag
var PhongFragmentShader string

// GlowVertexShader is the vertex shader for atmosphere glow shells.
//
//go:embed glow.vert
var GlowVertexShader string

// GlowFragmentShader is the fragment shader for atmosphere glow shells.
//
//go:embed glow.frag
var GlowFragmentShader string

// BackgroundVertexShader draws a full-screen triangle.
//
//go:embed background.vert
var BackgroundVertexShader string

// BackgroundFragmentShader samples the background texture.
//
//go:embed background.frag
var BackgroundFragmentShader string
