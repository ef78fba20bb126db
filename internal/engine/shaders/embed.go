// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// CubeVertexShader is the vertex shader for the water cube faces.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader is the fragment shader for the water cube faces.
//
//go:embed cube.frag
var CubeFragmentShader string

// PointsVertexShader is the vertex shader for the particle field.
//
//go:embed points.vert
var PointsVertexShader string

// PointsFragmentShader is the fragment shader for the particle field.
//
//go:embed points.frag
var PointsFragmentShader string
