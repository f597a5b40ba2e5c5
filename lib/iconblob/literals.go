// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconblob

// The literals below are base64-encoded PNGs wrapped at 76 columns. The
// artwork is a rounded tile with a diagonal #0ea5e9 to #6366f1 gradient
// and a white page glyph in the middle.

// icon16 is a 16x16 RGBA PNG.
const icon16 = `
iVBORw0KGgoAAAANSUhEUgAAABAAAAAQCAYAAAAf8/9hAAAA0klEQVR42qWT4QYCQRRG5yESERGR
iIhEREQkIiLRCySJJEmSSJIkSSLp9XZma9/ga6jluuKqPf/Pmdm5d5X6ELo7CN8cRK4OohcHsbNG
/KSROGokDxqpvUF6Z5DZGmQ3Boryq5xbu8ivXASSC0sXxcUDissSVC7NbYCfLEHl8swG+LUlqFyZ
2gD/ZgkqVydPKP5gElSujW2Av7YElesjG+CjkqByY2gDfM4SVG4OPCi+JBJUbvVtgG+YBJXbPRv4
tp58VPzavtzpeu//IZDs86/8AgK688TZffgkAAAAAElFTkSuQmCC
`

// icon48 is a 48x48 RGBA PNG.
const icon48 = `
iVBORw0KGgoAAAANSUhEUgAAADAAAAAwCAYAAABXAvmHAAACR0lEQVR42tWZWVMTURBG5z/EDRVk
EVBRQUCUVQkoSgRcCItg3l1YVDYVBQwKorKJAsoi/jtmJhJ+QdtdvgQqqeSjaM09Vf1+DjVM7u2x
rDgc/GnToXWbDq/ZdIQnZdWmoys2HeM5/oPnu02pPGnLDp1YciidJ2PRocxvDmXxnPzqUPaCQzky
XxzKnXfoFM/pOZfOzLqUx3N2xqVz0y6d58n/zPPJpQKeCx9dsvaCZ8OmAyz+v+ULp1wq4in+EKKL
k6H4MZ5fm5Ss8iU8lyZCdPl9jBBT5GVK30WJMEm+bHxXgGny5cEQVQQjIkyUr3wbEWCifNXYbzJa
/grP1VGOQOW1QeSrRzgA/ctrg8h7JQB9bP5FQKLy3jccgD7z2iDyNa85AP2H1QaRr5UA9G2jDSJ/
bZgD0FelNoj89VcSAL7ntUHk6yQA/ZHSBpG/8ZID0F9YbRD5my+2yEKPB9og8vUSgJ5ttEHkfUMc
gB7MtEHkfYMcgJ4q1QMA+VsSgB6JtUHkGwY4AD3Pa4PIN/ZzAHoZ0QaRb5IA9CalDSJ/u08CwGug
Noj8neccgN5htUHk70oAegHXBpG/94wD0O2BNoh889MwWejqQxtE3i8B6N5GPQCQ9/dyALp00gaR
b+nhAHRjpg0i3yoB6LpPG0S+rZsD0F2lNoh8e5cEgItWbRD5+xKAbom1QeQ7nnDAfqy40Wsg+qqM
Jd/5OPz3G4HR8oKJ8g8iA0yUDzwK7/xSabS8YJJ84OF29K/1RstHYsxjkwhJ86qMwR/sbL0Pdy9T
TwAAAABJRU5ErkJggg==
`

// icon128 is a 128x128 RGBA PNG.
const icon128 = `
iVBORw0KGgoAAAANSUhEUgAAAIAAAACACAYAAADDPmHLAAAFJklEQVR42u3d6XYUVRSG4VyDOIso
gorzABpIJAoCCgIyKyDxtyiDOCMOjKLgAAgqDqh3RxJUruBYZ5/a6SpRiUuaN+n97bX2FTxvIOmu
Oqevrwtz3c8jKe/15zp7Q96fyt7o++NIuqmxN//Q2Vvyfl92uu/ZkXRrY2d8l3fU9ra835a93feb
0TSzsXec6eysvKfLzvb9ejTd2di7TnX27rwny87xPTGa7jkxNr73ftXZ+/J+WfZ+3y/G0gONffDz
zj6U93jZh32PjaVHGts32WbaLyPpWt8aXfjdwX/0s87Ozftp3gtpXrUA/Pkk/MmBb3v0Qnrs6FUI
YdqvGV74kxHf9/FPuhDCNRle+FMC37f/SoUg/KmJ33+krPAD48+vV/iB8fMuOPwfIxB+b+HnHZho
BMLvTXzbQxOIQPi9iz94uQCE39v4g5eLQPi9j//EwX8IQPgx8H31xU5g/IV/DUD4sfAXHig7HoDw
4+EPXRKA8EPhDx34rRGA8MPhD+1vBCD8ePhP/l0Awo+DPx6A8GPi533q4yoC4cfFtwCEHxe/FYDw
4+Ev8gBI/OhD4i/6qAqA/smPPiR+CQD+Zz98ACD+Yg+A/D9fAXD4FgD9C1/0IfEXf+gBgL/tKwAO
/2kLAP5TTwFw+BYA/Xd+9CHxWwFQH/IoAA5/yQd1AOQnfNGHxLcA6I93FQCH3wqA+mw/fAAg/lIP
gPxiJ/qQ+Ev3VQHQ3+opAA6/BAB/pasAOPxlHgD5fX70IfEtAPphDgXA4S973wMAn+RRABz+MxYA
/BhX9CHxLQD6Gb7wAYD4rQCoBzgVAIf/7N46APLp3ehD4lsA9KPbCoDDrwNgn9sPHwCIv3zv7yUA
8qWN6EPiL3+vCoB+Y0cBcPglAPh1LQXA4a/wAMh39aIPiW8B0C9qKgAOf8W7HgD4lq4C4PCfswDg
V7SjD4lvAdDv54cPAMRvBUAdzqAAOPyV79QBkCdzRB8S3wKgj2VRABx+KwDqTJ7wAYD4qzwA8kCm
6EPir3q7CoA+jUsBcPglAPgoNgXA4a/2AMhz+KIPiW8B0IcwKgAOf/VbHgB4AqcC4PCftwDg41ej
D4lvAdBn74YPAMRvBUAdvKwAOPw1b9YBkKduRx8S3wKgj1xXABx+KwDqvP3wAYD4az0A8rKF6EPi
r32jCoC+aUMBcPglAPiaFQXA4a/zAMg7dqIPiW8B0BcsKQAOf90eDwC8XUsBcPjrLQD4arXoQ+Jb
APS9euEDAPHX7/mjEwB1qaIC4PA3vF4HQN6oGX1IfAuAvk5VAXD4rQCou3TDBwDib/QAyIuUow+J
v3F3FQB9i7YC4PBLAPAV6gqAw9/kAVD4+er06EPiWwAkvgJIKP6mXR4AhK8AEor/ggUA4vcrABTf
AiDx+48oABK/FQCBrwASiv/izjoACn++AkDxLQASXwEkFL8VAIGvABKKv9kDoPAXHFYAJP7mHVUA
JL4CSCh+CQDEH1AAKP4WD4DCVwAJxbcASPyBQwqAxN/ymgcA4Q8qABR/qwUA4vvSV6jTr2hT+BaA
8OPitwIQfjz8l16tAxB+THwLII/wA+N7AMKPhd8KQPjx8Le1AhB+OPxt21sBCD8afisA4cfDH24G
YBEIPy5+HuHHwR/efvHSADwC4QfFzyP83scffuVfAvAIhB8UP4/wexf/5YkEYBEIPy6+j/AD4/sI
PzC+j/AD449HIPy4+M0Rfo/8qfd/R/hT7BO+bo3wJ+kXO/QIv8vP8F3B+RMEXVYah5fymQAAAABJ
RU5ErkJggg==
`
