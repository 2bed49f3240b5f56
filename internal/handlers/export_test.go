package handlers

// DateLayout re-exports dateLayout for the external test package.
const DateLayout = dateLayout
