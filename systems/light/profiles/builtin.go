package profiles

// Profiles bundled with the distribution. Overridable per name
// through the user profiles file.
const builtinProfiles = `id,x,y,brightness
relax,0.5119,0.4147,144
concentrate,0.368,0.3686,219
energize,0.3151,0.3252,254
reading,0.4448,0.4066,240
`
