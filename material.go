package csg

// Material tags a polygon with an opaque surface token: a color, a texture
// handle, anything the renderer understands. The engine never looks inside
// a material, it only copies materials around and compares them with ==,
// so values must be comparable. nil is a valid material.
type Material interface{}
