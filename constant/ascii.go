package constant

// AsciiArtLogo is the application's banner shown in the root help output.
const AsciiArtLogo = `
 ┌─┐┌─┐┌┐┌┌─┐┌─┐┬ ┬┌─┐┬  ┬
 ├─┘├─┤│││├┤ └─┐├─┤├┤ │  │
 ┴  ┴ ┴┘└┘└─┘└─┘┴ ┴└─┘┴─┘┴─┘`
