package colors

const Violet Color = "violet"
